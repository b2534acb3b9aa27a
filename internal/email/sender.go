package email

import "github.com/sirupsen/logrus"

// Mensagem é o payload aceito pelo serviço de email.
type Mensagem struct {
	Para    string `json:"para"`
	Assunto string `json:"assunto"`
	Corpo   string `json:"corpo"`
}

// Sender é o contrato de envio. Hoje só existe o stub de log; nenhum envio
// real está ligado a este caminho.
type Sender interface {
	Enviar(msg Mensagem) error
}

// LogSender simula o envio registrando a mensagem no log.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Enviar(msg Mensagem) error {
	logrus.WithFields(logrus.Fields{
		"para":    msg.Para,
		"assunto": msg.Assunto,
	}).Info("Email simulado enviado")
	return nil
}
