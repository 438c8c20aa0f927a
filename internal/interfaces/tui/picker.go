// Package tui selector interactivo de clientes para la terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/application/autocomplete"
	"github.com/sofi-gomez/Sistema-Gestion-Comercial/internal/domain/entity"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#2E7D32")).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D32"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1)
)

// Picker modelo bubbletea del campo cliente con su desplegable.
type Picker struct {
	input     textinput.Model
	sug       *autocomplete.Sugeridor
	terminado bool
	cancelado bool
}

// NewPicker arranca con el campo vacío y el foco puesto.
func NewPicker(clientes []entity.Cliente) Picker {
	in := textinput.New()
	in.Placeholder = "Nombre del cliente"
	in.CharLimit = 120
	in.Focus()
	return Picker{input: in, sug: autocomplete.New(clientes)}
}

func (m Picker) Init() tea.Cmd { return textinput.Blink }

func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch key.Type {
	case tea.KeyCtrlC:
		m.cancelado = true
		return m, tea.Quit
	case tea.KeyUp:
		m.sug.Tecla(autocomplete.Arriba)
		return m, nil
	case tea.KeyDown:
		m.sug.Tecla(autocomplete.Abajo)
		return m, nil
	case tea.KeyEnter:
		if c, ok := m.sug.Tecla(autocomplete.Enter); ok {
			m.input.SetValue(c.Nombre)
			m.terminado = true
			return m, tea.Quit
		}
		// sin resaltado el texto queda como nombre libre
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.terminado = true
		return m, tea.Quit
	case tea.KeyEsc:
		if m.sug.Abierto() {
			m.sug.Tecla(autocomplete.Escape)
			return m, nil
		}
		m.cancelado = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.sug.Texto() {
		m.sug.Escribir(m.input.Value())
	}
	return m, cmd
}

func (m Picker) View() string {
	if m.terminado || m.cancelado {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Cliente ") + "\n\n")
	b.WriteString("  " + m.input.View() + "\n")
	for i, c := range m.sug.Sugerencias() {
		linea := c.Nombre
		if c.Documento != "" {
			linea += dimStyle.Render("  " + c.Documento)
		}
		if i == m.sug.Indice() {
			b.WriteString(selectedStyle.Render("  > "+c.Nombre) + "\n")
			continue
		}
		b.WriteString("    " + linea + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("  ↑/↓ moverse · enter elegir · esc cerrar/salir"))
	return boxStyle.Render(b.String())
}

// Elegido cliente tomado del desplegable.
func (m Picker) Elegido() (entity.Cliente, bool) { return m.sug.Elegido() }

// Texto nombre escrito o elegido.
func (m Picker) Texto() string { return strings.TrimSpace(m.input.Value()) }

// Cancelado si se salió con esc o ctrl+c.
func (m Picker) Cancelado() bool { return m.cancelado }

// Elegir corre el selector sobre in/out. Devuelve el cliente elegido (ID 0 si
// se confirmó un nombre libre) y false si se canceló.
func Elegir(clientes []entity.Cliente, in io.Reader, out io.Writer) (entity.Cliente, bool, error) {
	final, err := tea.NewProgram(NewPicker(clientes), tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return entity.Cliente{}, false, fmt.Errorf("selector de clientes: %w", err)
	}
	m := final.(Picker)
	if m.Cancelado() {
		return entity.Cliente{}, false, nil
	}
	if c, ok := m.Elegido(); ok {
		return c, true, nil
	}
	return entity.Cliente{Nombre: m.Texto()}, true, nil
}
