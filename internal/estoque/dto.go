package estoque

type MovimentacaoDTO struct {
	Tipo       string `json:"tipo" validate:"required,oneof=entrada saida ajuste"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	Motivo     string `json:"motivo"`
	Observacao string `json:"observacao"`
}
