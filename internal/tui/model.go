// Package tui is the terminal rendition of the checkout wizard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/whiteboardproductions/site/go/internal/catalog"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/summary"
	"github.com/whiteboardproductions/site/go/internal/wizard"
)

// AdvanceDelay is how long a chosen option stays highlighted before the
// next question appears.
const AdvanceDelay = 300 * time.Millisecond

const barWidth = 30

type currencyMsg struct {
	currency models.Currency
	ok       bool
}

type advanceMsg struct{}

// Result is what the program leaves behind once it quits.
type Result struct {
	Exited   bool
	Message  string
	DeepLink string
}

type Model struct {
	catalog      *catalog.Catalog
	plan         string
	deliveryBase string
	pending      *currency.Pending

	spinner   spinner.Model
	wizard    *wizard.Wizard
	cursor    int
	chosen    string
	advancing bool
	preview   bool

	result *Result
	err    error
}

// New validates the plan up front; the wizard itself is only built once the
// currency has settled.
func New(cat *catalog.Catalog, plan string, pending *currency.Pending, deliveryBase string) (Model, error) {
	if _, err := cat.Tier(plan); err != nil {
		return Model{}, err
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = TitleStyle

	return Model{
		catalog:      cat,
		plan:         plan,
		deliveryBase: deliveryBase,
		pending:      pending,
		spinner:      sp,
	}, nil
}

func (m Model) Result() *Result { return m.result }
func (m Model) Err() error      { return m.err }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForCurrency(m.pending))
}

func waitForCurrency(p *currency.Pending) tea.Cmd {
	return func() tea.Msg {
		<-p.Done()
		cur, ok := p.Result()
		return currencyMsg{currency: cur, ok: ok}
	}
}

func advanceAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return advanceMsg{} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case currencyMsg:
		return m.onCurrency(msg)

	case advanceMsg:
		if !m.advancing || m.wizard == nil {
			return m, nil
		}
		m.advancing = false
		m.chosen = ""
		m.cursor = 0
		if err := m.wizard.Advance(); err != nil {
			m.err = err
		}
		return m, nil

	case spinner.TickMsg:
		if m.wizard != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m Model) onCurrency(msg currencyMsg) (tea.Model, tea.Cmd) {
	// a discarded lookup reports !ok; the customer has already left
	if !msg.ok || m.wizard != nil {
		return m, nil
	}

	w, err := wizard.New(m.catalog, m.plan, msg.currency)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if err := w.Advance(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.wizard = w
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.discard()
		m.result = &Result{Exited: true}
		return m, tea.Quit
	}

	if m.wizard == nil {
		if key.Matches(msg, keys.Back) {
			m.discard()
			m.result = &Result{Exited: true}
			return m, tea.Quit
		}
		return m, nil
	}

	// input is frozen while a chosen option is on display
	if m.advancing {
		return m, nil
	}

	options := m.wizard.OptionIDs()

	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Preview):
		if m.wizard.Complete() {
			m.preview = !m.preview
		}
	case key.Matches(msg, keys.Back):
		m.preview = false
		m.cursor = 0
		if m.wizard.Retreat() {
			m.result = &Result{Exited: true}
			return m, tea.Quit
		}
	case key.Matches(msg, keys.Select):
		if m.wizard.Complete() {
			return m.confirm()
		}
		if len(options) == 0 {
			return m, nil
		}
		if err := m.wizard.Record(options[m.cursor]); err != nil {
			m.err = err
			return m, nil
		}
		m.chosen = options[m.cursor]
		m.advancing = true
		return m, advanceAfter(AdvanceDelay)
	}
	return m, nil
}

func (m Model) discard() {
	if m.pending != nil {
		m.pending.Discard()
	}
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	o := m.wizard.Order()
	cur := m.wizard.Currency()
	msg := summary.Message(o, cur)
	base := summary.DeliveryBase(m.deliveryBase, m.catalog.WhatsAppNumber())

	m.result = &Result{Message: msg, DeepLink: summary.DeepLink(base, msg)}
	return m, tea.Quit
}

func (m Model) View() string {
	if m.result != nil {
		return ""
	}

	if m.wizard == nil {
		return PanelStyle.Render(fmt.Sprintf("%s Checking your region for pricing…\n\n%s",
			m.spinner.View(), HelpStyle.Render("esc back • q quit")))
	}

	w := m.wizard
	cur := w.Currency()
	step := w.Current()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", HeaderStyle.Render(w.Tier().Name+" Plan"))
	fmt.Fprintf(&b, "%s %s\n\n", progressBar(w.Progress()), SubtitleStyle.Render(fmt.Sprintf("Step %d of %d", min(w.Step(), w.TotalSteps()), w.TotalSteps())))
	fmt.Fprintf(&b, "%s\n%s\n\n", TitleStyle.Render(step.Title()), SubtitleStyle.Render(step.Subtitle()))

	switch s := step.(type) {
	case wizard.PodcastOwnershipStep:
		for i, o := range s.Options {
			b.WriteString(m.optionLine(i, o.ID, o.Emoji, o.Title, "", ""))
		}
	case wizard.VideoVariationsStep:
		for i, o := range s.Options {
			b.WriteString(m.optionLine(i, o.ID, o.Emoji, o.Title, "", ""))
		}
	case wizard.PodcastAddOnStep:
		for i, o := range s.Options {
			b.WriteString(m.optionLine(i, o.ID, o.Emoji, o.AddOn.Name,
				"+"+summary.FormatPrice(o.AddOn.Price.In(cur), cur), o.AddOn.Description))
		}
	case wizard.VideoPackageStep:
		for i, o := range s.Options {
			b.WriteString(m.optionLine(i, o.ID, o.Emoji, o.Package.Name,
				"+"+summary.FormatPrice(o.Package.Price.In(cur), cur),
				fmt.Sprintf("%d video variations", o.Package.VariationCount)))
		}
	case wizard.SummaryStep:
		if m.preview {
			b.WriteString(summary.Message(s.Order, s.Currency) + "\n")
		} else {
			sum := summary.Build(s.Order, s.Currency)
			for _, l := range sum.Lines {
				fmt.Fprintf(&b, "%s  %s\n  %s\n", OptionStyle.Render(l.Title), PriceStyle.Render(l.FormattedAmount(cur)), SubtitleStyle.Render(l.Detail))
			}
		}
	}

	fmt.Fprintf(&b, "\n%s %s\n", OptionStyle.Render("Total:"), PriceStyle.Render(summary.FormatPrice(w.Total(), cur)))
	if m.err != nil {
		fmt.Fprintf(&b, "%s\n", SubtitleStyle.Render(m.err.Error()))
	}

	help := "↑/↓ move • enter choose • backspace back • q quit"
	if w.Complete() {
		help = "enter confirm • p preview message • backspace back • q quit"
	}
	b.WriteString("\n" + HelpStyle.Render(help))

	return PanelStyle.Render(b.String())
}

func (m Model) optionLine(i int, id, emoji, title, price, detail string) string {
	marker := "  "
	style := OptionStyle
	switch {
	case m.advancing && m.chosen == id:
		marker, style = "✓ ", ChosenStyle
	case !m.advancing && i == m.cursor:
		marker, style = "› ", SelectedStyle
	}

	line := marker + style.Render(emoji+" "+title)
	if price != "" {
		line += "  " + PriceStyle.Render(price)
	}
	line += "\n"
	if detail != "" {
		line += "    " + SubtitleStyle.Render(detail) + "\n"
	}
	return line
}

func progressBar(percent float64) string {
	filled := int(percent / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	return BarFilledStyle.Render(strings.Repeat("█", filled)) +
		BarEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
