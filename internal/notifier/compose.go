package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

const (
	footerInstagram = "@agendamentomais"
	footerWhatsApp  = "(61) 98582-5956"
)

type Message struct {
	Subject string
	Text    string
	HTML    string
}

type statusStyle struct {
	Title     string
	Lead      string
	Note      string
	TextLead  string
	TextNote  string
	Color     string
	TextColor string
}

var styles = map[string]statusStyle{
	"pending": {
		Title:     "Aguardando Confirmação",
		Lead:      "Seu agendamento está PENDENTE. Entre em contato conosco para confirmar.",
		Note:      "Urgente: precisamos da sua confirmação para garantir seu horário.",
		TextLead:  "Seu agendamento está PENDENTE de confirmação.",
		TextNote:  "URGENTE: Entre em contato conosco para confirmar seu horário.",
		Color:     "#ffc107",
		TextColor: "#212529",
	},
	"confirmed": {
		Title:     "Agendamento Confirmado!",
		Lead:      "Seu agendamento foi CONFIRMADO. Estamos esperando por você!",
		Note:      "Importante: chegue com 10 minutos de antecedência.",
		TextLead:  "Seu agendamento foi CONFIRMADO!",
		TextNote:  "Importante: Chegue com 10 minutos de antecedência.\n\nEstamos esperando por você!",
		Color:     "#17a2b8",
		TextColor: "white",
	},
	"done": {
		Title:     "Agendamento Realizado",
		Lead:      "Seu agendamento foi REALIZADO com sucesso!",
		Note:      "Obrigado por confiar em nós! Esperamos ter atendido suas expectativas.",
		TextLead:  "Seu agendamento foi marcado como REALIZADO!",
		TextNote:  "Obrigado por confiar em nós!",
		Color:     "#28a745",
		TextColor: "white",
	},
	"canceled": {
		Title:     "Agendamento Cancelado",
		Lead:      "Seu agendamento foi CANCELADO.",
		Note:      "Entre em contato conosco para mais informações ou para reagendar.",
		TextLead:  "Seu agendamento foi CANCELADO.",
		TextNote:  "Entre em contato conosco para mais informações.",
		Color:     "#dc3545",
		TextColor: "white",
	},
}

func styleFor(status string) statusStyle {
	if s, ok := styles[status]; ok {
		return s
	}
	upper := strings.ToUpper(status)
	return statusStyle{
		Title:     "Atualização do Agendamento",
		Lead:      "Seu agendamento foi atualizado para: " + upper,
		TextLead:  "Seu agendamento foi atualizado.",
		Color:     "#6c757d",
		TextColor: "white",
	}
}

// displayDate turns YYYY-MM-DD into DD/MM/YYYY and leaves anything else as is.
func displayDate(date string) string {
	if d, err := time.Parse("2006-01-02", date); err == nil {
		return d.Format("02/01/2006")
	}
	return date
}

var htmlTemplate = template.Must(template.New("email").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Agendamento+</title></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; background: #f5f7fa; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 12px; overflow: hidden;">
    <div style="background: {{.Style.Color}}; color: {{.Style.TextColor}}; padding: 24px; text-align: center;">
      <h1 style="margin: 0;">Agendamento+</h1>
      <h2 style="margin: 8px 0 0 0;">{{.Style.Title}}</h2>
    </div>
    <div style="padding: 24px;">
      <p>Olá <strong>{{.ClientName}}</strong>,</p>
      <p>{{.Style.Lead}}</p>
      {{if .Style.Note}}<p><strong>{{.Style.Note}}</strong></p>{{end}}
      <table style="width: 100%; border-collapse: collapse;">
        <tr><td><strong>Serviço:</strong></td><td>{{.ServiceName}}</td></tr>
        <tr><td><strong>Data:</strong></td><td>{{.Date}}</td></tr>
        <tr><td><strong>Hora:</strong></td><td>{{.Time}}</td></tr>
        <tr><td><strong>Status:</strong></td><td>{{.StatusLabel}}</td></tr>
      </table>
      <p>Instagram: {{.Instagram}}<br>WhatsApp: {{.WhatsApp}}</p>
    </div>
    <div style="padding: 16px; text-align: center; color: #999;">
      <p style="margin: 0;">Esta é uma mensagem automática do sistema Agendamento+.</p>
    </div>
  </div>
</body>
</html>`))

// Compose renders the subject, plain text and HTML bodies for n. It does not
// depend on any transport.
func Compose(n Notification) (Message, error) {
	style := styleFor(n.Status)
	date := displayDate(n.Date)

	subject := "Atualização do Agendamento - " + n.ServiceName
	if n.Status == "pending" {
		subject = "Confirmação de Agendamento - " + n.ServiceName
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Olá %s,\n\n%s\n\n", n.ClientName, style.TextLead)
	fmt.Fprintf(&text, "Detalhes:\nServiço: %s\nData: %s\nHora: %s\n", n.ServiceName, date, n.Time)
	if _, known := styles[n.Status]; !known {
		fmt.Fprintf(&text, "Status: %s\n", strings.ToUpper(n.Status))
	}
	if style.TextNote != "" {
		fmt.Fprintf(&text, "\n%s\n", style.TextNote)
	}
	fmt.Fprintf(&text, "\nInstagram: %s\nWhatsApp: %s", footerInstagram, footerWhatsApp)

	var html bytes.Buffer
	if err := htmlTemplate.Execute(&html, map[string]any{
		"Style":       style,
		"ClientName":  n.ClientName,
		"ServiceName": n.ServiceName,
		"Date":        date,
		"Time":        n.Time,
		"StatusLabel": strings.ToUpper(n.Status),
		"Instagram":   footerInstagram,
		"WhatsApp":    footerWhatsApp,
	}); err != nil {
		return Message{}, fmt.Errorf("render email: %w", err)
	}

	return Message{Subject: subject, Text: text.String(), HTML: html.String()}, nil
}
