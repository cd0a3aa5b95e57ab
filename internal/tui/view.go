package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/pribylovaa/odysee-comments/internal/models"
	"github.com/pribylovaa/odysee-comments/internal/view/comment"
)

// previewRunes — сколько символов свёрнутого тела видно вне курсора.
const previewRunes = 200

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Comments on %s (%d)", m.uri, m.store.TotalForURI(m.uri))
	if m.loading {
		title += " (loading...)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	signer := m.active
	if signer == "" {
		signer = "no channel"
	}
	b.WriteString(countStyle.Render("signing as " + signer))
	b.WriteString("\n\n")

	switch m.mode {
	case modeCompose:
		b.WriteString(m.renderEditor("new comment", "enter send | esc cancel"))
		b.WriteString("\n")
	case modeChannelNew:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.redirect != "" {
			b.WriteString(helpStyle.Render(fmt.Sprintf("A channel is required to comment on %s.", m.siteName)))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter create | esc cancel"))
		b.WriteString("\n\n")
	}

	if len(m.rows) == 0 && !m.loading {
		b.WriteString(helpStyle.Render("No comments yet."))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		b.WriteString(m.renderRow(i, r))

		if r.id == m.anchor {
			switch m.mode {
			case modeEdit:
				v := m.views[r.id]
				hint := fmt.Sprintf("%d/%d | ctrl+s save | esc cancel", v.CharCount(), comment.MaxChars)
				if !v.CanSubmit() {
					hint = fmt.Sprintf("%d/%d | unchanged | esc cancel", v.CharCount(), comment.MaxChars)
				}
				b.WriteString(m.renderEditor("editing", hint))
			case modeReply:
				b.WriteString(m.renderEditor("reply", "enter send | esc cancel"))
			}
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine(m.keys.browseHelp())))

	return b.String()
}

func (m Model) renderRow(i int, r row) string {
	c, ok := m.store.Comment(r.id)
	if !ok {
		return ""
	}
	v := m.views[r.id]
	pad := strings.Repeat(" ", r.depth*indent)

	cursor := "  "
	if i == m.cursor {
		cursor = selectedStyle.Render("> ")
	}

	author := anonStyle.Render("Anonymous")
	if !c.IsAnonymous() {
		author = authorStyle.Render(c.ChannelName)
	}

	head := []string{author}
	if c.Pending {
		head = append(head, pendingStyle.Render("(pending)"))
	}
	if v != nil && v.Mode() == comment.Editing {
		head = append(head, pendingStyle.Render("(editing)"))
	}
	head = append(head, countStyle.Render(m.renderCounts(c.ID)))
	if v != nil && v.Hovering() && v.Props().IsMine {
		head = append(head, countStyle.Render("[e d]"))
	}

	body := c.Body
	if v != nil && v.Collapsible() && i != m.cursor {
		body = collapse(body, previewRunes) + "... (more)"
	}
	if c.Hidden {
		body = hiddenStyle.Render(body)
	}

	var b strings.Builder
	b.WriteString(cursor + pad + strings.Join(head, " ") + "\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + pad + "  " + line + "\n")
	}

	return b.String()
}

// renderCounts — суммарные реакции; свои отмечены звёздочкой.
func (m Model) renderCounts(id string) string {
	totals := m.store.ReactionTotals(id)
	mine := models.ReactionCounts{}
	for _, k := range m.store.MyReactions(id) {
		mine[k] = 1
	}

	parts := make([]string, 0, len(models.ReactionKinds))
	for _, k := range models.ReactionKinds {
		mark := ""
		if mine.Has(k) {
			mark = "*"
		}
		parts = append(parts, fmt.Sprintf("%s%s %d", k, mark, totals[k]))
	}

	return strings.Join(parts, " ")
}

func (m Model) renderEditor(title, hint string) string {
	return helpStyle.Render(title) + "\n" + editorStyle.Render(m.editor.View()) + "\n" + helpStyle.Render(hint) + "\n"
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	return strings.Join(parts, " | ")
}

func collapse(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
