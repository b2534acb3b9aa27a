package pedido

// Status é o enum fechado do ciclo de vida do pedido.
type Status string

const (
	StatusAguardandoSeparacao Status = "aguardando_separacao"
	StatusEmSeparacao         Status = "em_separacao"
	StatusEmbalado            Status = "embalado"
	StatusEnviado             Status = "enviado"
	StatusCancelado           Status = "cancelado"
)

// StatusAtivos são os estados ainda dentro da esteira de separação/envio.
var StatusAtivos = []Status{StatusAguardandoSeparacao, StatusEmSeparacao, StatusEmbalado}

// proximoStatus é a tabela de transições para frente. Não existe transição
// para trás.
var proximoStatus = map[Status]Status{
	StatusAguardandoSeparacao: StatusEmSeparacao,
	StatusEmSeparacao:         StatusEmbalado,
	StatusEmbalado:            StatusEnviado,
}

func (s Status) Valido() bool {
	switch s {
	case StatusAguardandoSeparacao, StatusEmSeparacao, StatusEmbalado, StatusEnviado, StatusCancelado:
		return true
	}
	return false
}

// Terminal indica que nenhuma transição sai deste estado.
func (s Status) Terminal() bool {
	return s == StatusEnviado || s == StatusCancelado
}

// TransicaoPermitida valida a transição no núcleo, não na UI. Cancelamento é
// aceito a partir de qualquer estado não terminal.
func TransicaoPermitida(de, para Status) bool {
	if !de.Valido() || !para.Valido() {
		return false
	}
	if para == StatusCancelado {
		return !de.Terminal()
	}
	return proximoStatus[de] == para
}
