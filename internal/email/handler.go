package email

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Sender Sender
}

func NewHandler(sender Sender) *Handler {
	return &Handler{Sender: sender}
}

type enviarEmailResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Detalhes map[string]string `json:"detalhes"`
}

// POST /enviar-email
func (h *Handler) EnviarEmail(w http.ResponseWriter, r *http.Request) {
	var msg Mensagem
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := h.Sender.Enviar(msg); err != nil {
		http.Error(w, "Erro ao enviar email", http.StatusInternalServerError)
		return
	}

	// corta em fronteira de runa; fatiar bytes quebraria acentos no meio
	preview := msg.Corpo
	if runas := []rune(preview); len(runas) > 100 {
		preview = string(runas[:100])
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(enviarEmailResponse{
		Success: true,
		Message: "Email simulado enviado com sucesso",
		Detalhes: map[string]string{
			"para":          msg.Para,
			"assunto":       msg.Assunto,
			"corpo_preview": preview,
		},
	})
}
