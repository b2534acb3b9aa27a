package lojista

type CriarLojistaDTO struct {
	NomeFantasia       string  `json:"nomeFantasia" validate:"required"`
	NomeContato        string  `json:"nomeContato"`
	Email              string  `json:"email" validate:"required,email"`
	Telefone           string  `json:"telefone" validate:"required"`
	CNPJ               string  `json:"cnpj"`
	ComissaoPercentual float64 `json:"comissaoPercentual" validate:"gte=0,lte=100"`
	EnderecoCompleto   string  `json:"enderecoCompleto"`
	Observacoes        string  `json:"observacoes"`
}

type AtualizarLojistaDTO struct {
	NomeFantasia       string  `json:"nomeFantasia" validate:"required"`
	NomeContato        string  `json:"nomeContato"`
	Email              string  `json:"email" validate:"required,email"`
	Telefone           string  `json:"telefone"`
	CNPJ               string  `json:"cnpj"`
	ComissaoPercentual float64 `json:"comissaoPercentual" validate:"gte=0,lte=100"`
	EnderecoCompleto   string  `json:"enderecoCompleto"`
	Observacoes        string  `json:"observacoes"`
	Ativo              bool    `json:"ativo"`
}
