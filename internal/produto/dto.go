package produto

type ProdutoDTO struct {
	Nome             string `json:"nome" validate:"required"`
	SKU              string `json:"sku" validate:"required"`
	Categoria        string `json:"categoria"`
	Descricao        string `json:"descricao"`
	PesoGramas       *int   `json:"pesoGramas"`
	ImagemURL        string `json:"imagemUrl"`
	QuantidadeAtual  int    `json:"quantidadeAtual" validate:"gte=0"`
	QuantidadeMinima int    `json:"quantidadeMinima" validate:"gte=0"`
	Status           string `json:"status" validate:"omitempty,oneof=ativo inativo"`
}

type LocalizacaoDTO struct {
	Localizacao string `json:"localizacao"`
}
