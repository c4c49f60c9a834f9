package notify

import "github.com/reimbazz/GF-Innovation-service/internal/logger"

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification é a mensagem transitória exibida ao usuário após cada
// tentativa de mutação (equivalente aos toasts do frontend).
type Notification struct {
	Title       string
	Description string
	Variant     string
}

type Notifier interface {
	Notify(n Notification)
}

// LogNotifier encaminha notificações para o logger estruturado; é o sink
// padrão quando não há interface gráfica acoplada.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	event := logger.Info()
	if n.Variant == VariantDestructive {
		event = logger.Warn()
	}
	event.
		Str("title", n.Title).
		Str("description", n.Description).
		Str("variant", n.Variant).
		Msg("notification")
}
