package realtime

// Operacao identifica o tipo de mudança ocorrida em uma tabela.
type Operacao string

const (
	OperacaoInsert Operacao = "insert"
	OperacaoUpdate Operacao = "update"
	OperacaoDelete Operacao = "delete"
)

// Evento descreve uma mudança de linha para os assinantes decidirem entre
// atualização incremental ou recarga completa da lista.
type Evento struct {
	Tabela     string   `json:"tabela"`
	Operacao   Operacao `json:"operacao"`
	RegistroID string   `json:"registroId"`
}
