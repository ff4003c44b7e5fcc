package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"cluedo-dealer/internal/cards"
	"cluedo-dealer/internal/events"
	"cluedo-dealer/internal/player"
	"cluedo-dealer/internal/stats"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// SeatColors maps seats to their token colors.
var SeatColors = map[cards.Seat]*color.Color{
	cards.SeatScarlet: color.New(color.FgRed),
	cards.SeatMustard: color.New(color.FgYellow),
	cards.SeatWhite:   color.New(color.FgWhite),
	cards.SeatGreen:   color.New(color.FgGreen),
	cards.SeatPeacock: color.New(color.FgBlue),
	cards.SeatPlum:    color.New(color.FgMagenta),
}

// ColorizeSeat returns a seat name in its token color.
func ColorizeSeat(s cards.Seat) string {
	if c, ok := SeatColors[s]; ok {
		return c.Sprint(s.String())
	}
	return s.String()
}

func joinCards(cs []cards.Card) string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// DealRenderer implements the events.Listener interface to print setup and play to the console.
type DealRenderer struct {
	out io.Writer
}

func NewDealRenderer(out io.Writer) *DealRenderer {
	return &DealRenderer{out: out}
}

// HandleEvent is the central dispatcher for rendering events.
func (r *DealRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.SeatWarningEvent:
		C.Warn.Fprintf(r.out, "Warning: %q is not a seat, ignoring it.\n", event.Name)
	case events.HandRevealedEvent:
		C.Info.Fprintf(r.out, "\n%s's hand: %s\n", ColorizeSeat(event.Seat), joinCards(event.Hand))
	case events.HandDealtEvent:
		fmt.Fprintf(r.out, "-> %s is dealt %d cards.\n", ColorizeSeat(event.Seat), event.Count)
	case events.GameReadyEvent:
		C.Header.Fprintf(r.out, "\n--- %d players seated, cards dealt ---\n", len(event.Seats))
	case events.TurnStartEvent:
		C.Header.Fprintf(r.out, "\n--- Turn %d: %s ---\n", event.TurnNumber, ColorizeSeat(event.Seat))
	case events.GameOverEvent:
		C.Header.Fprintln(r.out, "\n--- GAME OVER ---")
		C.Yes.Fprintf(r.out, "The solution was: %s\n", joinCards(event.Solution))
	}
}

// RenderHandCounts shows how many cards each seat holds without naming them.
func RenderHandCounts(out io.Writer, counts map[cards.Seat]int, active []cards.Seat) {
	playing := make(map[cards.Seat]bool, len(active))
	for _, s := range active {
		playing[s] = true
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Hands")
	t.AppendHeader(table.Row{"#", "Seat", "Playing", "Cards"})
	for i, s := range cards.CanonicalSeats() {
		status := "-"
		if playing[s] {
			status = "yes"
		}
		t.AppendRow(table.Row{i + 1, s.String(), status, counts[s]})
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}, {Number: 4, Align: text.AlignRight}})
	t.Render()
}

// RenderHands shows every player's cards. Only for games that are over or not for play.
func RenderHands(out io.Writer, players []player.Player) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle("Dealt Hands")
	t.AppendHeader(table.Row{"Seat", "Suspects", "Weapons", "Rooms"})
	for _, p := range players {
		byCat := make(map[cards.Category][]cards.Card)
		for _, c := range p.Hand() {
			byCat[c.Category] = append(byCat[c.Category], c)
		}
		t.AppendRow(table.Row{
			p.Name(),
			joinCards(byCat[cards.CategorySuspect]),
			joinCards(byCat[cards.CategoryWeapon]),
			joinCards(byCat[cards.CategoryRoom]),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// RenderSurvey prints the fairness summary of a stats run.
func RenderSurvey(out io.Writer, s *stats.Survey) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%d games", s.Games))
	t.AppendHeader(table.Row{"Seat", "Min", "Max", "Average"})
	for _, seat := range s.Seats {
		avg := 0.0
		if s.Games > 0 {
			avg = float64(s.CardsDealt[seat]) / float64(s.Games)
		}
		t.AppendRow(table.Row{seat.String(), s.MinHand[seat], s.MaxHand[seat], fmt.Sprintf("%.2f", avg)})
	}
	t.AppendFooter(table.Row{"spread", "", s.MaxSpread, ""})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.Render()

	withheld := make([]cards.Card, 0, len(s.SolutionHits))
	for c := range s.SolutionHits {
		withheld = append(withheld, c)
	}
	sort.Slice(withheld, func(i, j int) bool {
		if withheld[i].Category != withheld[j].Category {
			return withheld[i].Category < withheld[j].Category
		}
		return withheld[i].Name < withheld[j].Name
	})
	h := table.NewWriter()
	h.SetOutputMirror(out)
	h.SetTitle("Times withheld")
	h.AppendHeader(table.Row{"Card", "Type", "Count"})
	for i, c := range withheld {
		if i > 0 && c.Category != withheld[i-1].Category {
			h.AppendSeparator()
		}
		h.AppendRow(table.Row{c.Name, c.Category.String(), s.SolutionHits[c]})
	}
	h.SetStyle(table.StyleLight)
	h.Render()
}
