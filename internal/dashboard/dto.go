package dashboard

type AdminStatsDTO struct {
	AguardandoSeparacao int `json:"aguardandoSeparacao"`
	EmSeparacao         int `json:"emSeparacao"`
	Embalado            int `json:"embalado"`
	EnviadosHoje        int `json:"enviadosHoje"`
	EstoqueBaixo        int `json:"estoqueBaixo"`
}

type LojistaStatsDTO struct {
	TotalProdutos    int     `json:"totalProdutos"`
	EstoqueBaixo     int     `json:"estoqueBaixo"`
	PedidosPendentes int     `json:"pedidosPendentes"`
	PedidosMes       int     `json:"pedidosMes"`
	EnviadosMes      int     `json:"enviadosMes"`
	FaturamentoMes   float64 `json:"faturamentoMes"`
}
