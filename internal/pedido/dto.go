package pedido

type ItemVendaDTO struct {
	ProdutoID     uint    `json:"produtoId" validate:"required"`
	Quantidade    int     `json:"quantidade" validate:"required,gt=0"`
	PrecoUnitario float64 `json:"precoUnitario" validate:"required,gt=0"`
}

type CriarPedidoDTO struct {
	NumeroPedidoExterno string         `json:"numeroPedidoExterno"`
	MarketplaceOrigem   string         `json:"marketplaceOrigem" validate:"required"`
	DadosCliente        DadosCliente   `json:"dadosCliente"`
	Itens               []ItemVendaDTO `json:"itens" validate:"required,min=1,dive"`
}

type AvancarStatusDTO struct {
	Status         Status `json:"status" validate:"required"`
	CodigoRastreio string `json:"codigoRastreio"`
	Transportadora string `json:"transportadora"`
}
