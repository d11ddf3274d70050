package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/diary"
	"github.com/julianstephens/sportlog/internal/forms"
	"github.com/julianstephens/sportlog/internal/models"
	"github.com/julianstephens/sportlog/internal/storage"
	"github.com/julianstephens/sportlog/internal/tui/components/dances"
	"github.com/julianstephens/sportlog/internal/tui/components/entrylist"
)

const today = "2026-02-01"

func setupTestModel(t *testing.T) (*Model, *diary.Store, *storage.MemoryStore) {
	t.Helper()
	provider := storage.NewMemoryStore()
	if err := provider.Init(); err != nil {
		t.Fatalf("failed to init provider: %v", err)
	}
	current := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	d := diary.New(provider, diary.WithClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	}))
	m := NewModel(d, func() string { return today })
	return &m, d, provider
}

func update(t *testing.T, m *Model, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	*m = nm
	return cmd
}

func TestTabNavigation(t *testing.T) {
	m, _, _ := setupTestModel(t)

	if m.state != constants.StateHome {
		t.Fatalf("initial state = %v, want home", m.state)
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != constants.StateEntries {
		t.Errorf("after tab state = %v, want entries", m.state)
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != constants.StateSettings {
		t.Errorf("after second tab state = %v, want settings", m.state)
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != constants.StateHome {
		t.Errorf("tab should wrap to home, got %v", m.state)
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != constants.StateSettings {
		t.Errorf("shift+tab should wrap to settings, got %v", m.state)
	}
}

func TestHomeOpensSportForm(t *testing.T) {
	m, _, _ := setupTestModel(t)

	update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != constants.StateForm {
		t.Fatalf("state = %v, want form", m.state)
	}
	if m.draft == nil || m.draft.form.Sport() != models.SportCycling {
		t.Fatalf("expected a cycling draft, got %#v", m.draft)
	}
	if m.draft.endurance.Date != today {
		t.Errorf("draft date = %q, want %q", m.draft.endurance.Date, today)
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StateHome || m.draft != nil {
		t.Errorf("esc should cancel back to home, state = %v", m.state)
	}
}

func TestRunningDraftDerivesPace(t *testing.T) {
	f := forms.NewRunningForm(today)
	d := newDraft(f, 0)

	d.endurance.Distance = "5"
	d.endurance.Duration = "30"
	d.sync()
	if f.Pace() != "6.00" {
		t.Errorf("pace = %q, want 6.00", f.Pace())
	}

	d.endurance.Duration = "abc"
	d.sync()
	if f.Pace() != "" {
		t.Errorf("pace = %q, want empty for invalid duration", f.Pace())
	}
}

func TestSaveRunningEntry(t *testing.T) {
	m, d, _ := setupTestModel(t)

	m.startNew(models.SportRunning)
	m.draft.endurance.Distance = "10"
	m.draft.endurance.Duration = "50"
	m.draft.endurance.Rating = 9
	m.completeStep()

	if m.state != constants.StateHome {
		t.Errorf("state after save = %v, want home", m.state)
	}
	entries := d.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	run, ok := entries[0].Data.(models.RunningData)
	if !ok {
		t.Fatalf("payload = %T, want RunningData", entries[0].Data)
	}
	if run.Pace != "5.00" || run.Rating != constants.MaxRating || run.Date != today {
		t.Errorf("unexpected payload %+v", run)
	}
	if m.entryList.Len() != 1 {
		t.Errorf("entry list not refreshed, len = %d", m.entryList.Len())
	}
}

func TestGymAddAnotherExercise(t *testing.T) {
	m, d, _ := setupTestModel(t)

	m.startNew(models.SportGym)
	m.draft.gym.Exercises[0].Name = "Squat"
	m.draft.gym.Exercises[0].Sets = "3"
	m.draft.gym.AddAnother = true
	m.completeStep()

	if m.state != constants.StateForm {
		t.Fatalf("add another should keep the form open, state = %v", m.state)
	}
	if len(m.draft.gym.Exercises) != 2 {
		t.Fatalf("expected 2 exercise rows, got %d", len(m.draft.gym.Exercises))
	}
	if m.draft.gym.Exercises[0].Name != "Squat" {
		t.Errorf("first exercise lost: %+v", m.draft.gym.Exercises[0])
	}

	m.draft.gym.Exercises[1].Name = "Bench"
	m.completeStep()

	entries := d.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	gym := entries[0].Data.(models.GymData)
	if len(gym.Exercises) != 2 || gym.Exercises[0].Name != "Squat" || gym.Exercises[1].Name != "Bench" {
		t.Errorf("unexpected exercises %+v", gym.Exercises)
	}
}

func TestBallroomTwoStep(t *testing.T) {
	m, d, _ := setupTestModel(t)

	m.startNew(models.SportBallroom)
	m.draft.ballroom.Dances = []string{"Tango", "Waltz"}
	m.completeStep()

	if m.state != constants.StateForm || m.draft.step != 1 {
		t.Fatalf("expected feedback step, state = %v", m.state)
	}
	if len(m.draft.ballroom.Per) != 2 || m.draft.ballroom.Per[0].Name != "Waltz" {
		t.Fatalf("feedback rows should follow catalog order, got %+v", m.draft.ballroom.Per)
	}

	m.draft.ballroom.Per[1].Feedback = "better heel leads"
	m.draft.ballroom.Per[1].Rating = 4
	m.draft.ballroom.Notes = "group class"
	m.completeStep()

	entries := d.GetEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	b := entries[0].Data.(models.BallroomData)
	if len(b.Dances) != len(b.PerDanceFeedback) {
		t.Fatalf("dances and feedback misaligned: %+v", b)
	}
	for i, name := range b.Dances {
		if b.PerDanceFeedback[i].Name != name {
			t.Errorf("feedback %d is for %q, want %q", i, b.PerDanceFeedback[i].Name, name)
		}
	}
	if b.PerDanceFeedback[1].Feedback != "better heel leads" || b.PerDanceFeedback[1].Rating != 4 {
		t.Errorf("unexpected tango feedback %+v", b.PerDanceFeedback[1])
	}
}

func TestEditEntryUpdatesInPlace(t *testing.T) {
	m, d, _ := setupTestModel(t)

	saved := d.SaveEntry(models.RunningData{Date: today, Distance: "5", Duration: "30", Pace: "6.00"})
	m.refreshEntries()
	m.state = constants.StateEntries

	update(t, m, entrylist.EditEntryMsg{Entry: saved})
	if m.state != constants.StateForm || !m.draft.editing() {
		t.Fatalf("expected edit draft, state = %v", m.state)
	}
	if m.draft.endurance.Distance != "5" {
		t.Errorf("draft not preloaded: %+v", m.draft.endurance)
	}

	m.draft.endurance.Duration = "25"
	m.completeStep()

	if m.state != constants.StateEntries {
		t.Errorf("state after edit = %v, want entries", m.state)
	}
	entries := d.GetEntries()
	if len(entries) != 1 || entries[0].Timestamp != saved.Timestamp {
		t.Fatalf("edit should keep one entry with the same timestamp, got %+v", entries)
	}
	if run := entries[0].Data.(models.RunningData); run.Pace != "5.00" {
		t.Errorf("pace = %q, want 5.00", run.Pace)
	}
}

func TestClearEntriesConfirmation(t *testing.T) {
	m, d, _ := setupTestModel(t)

	d.SaveEntry(models.RunningData{Date: today})
	m.refreshEntries()
	m.state = constants.StateEntries

	cmd := update(t, m, entrylist.ClearEntriesMsg{})
	if cmd == nil {
		t.Fatal("expected a confirmation command")
	}
	update(t, m, cmd())
	if m.state != constants.StateConfirmClear {
		t.Fatalf("state = %v, want confirm", m.state)
	}

	update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if m.state != constants.StateEntries || len(d.GetEntries()) != 1 {
		t.Fatalf("declining should keep entries")
	}

	update(t, m, cmd())
	cmd = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if cmd == nil {
		t.Fatal("expected confirm action command")
	}
	update(t, m, cmd())

	if len(d.GetEntries()) != 0 {
		t.Errorf("entries not cleared")
	}
	if m.entryList.Len() != 0 {
		t.Errorf("entry list not refreshed")
	}
}

func TestToggleDancePersists(t *testing.T) {
	m, d, _ := setupTestModel(t)
	m.state = constants.StateSettings

	update(t, m, dances.ToggleDanceMsg{Name: "Waltz"})

	for _, dance := range d.GetSettings().Dances {
		if dance.Name == "Waltz" && dance.Enabled {
			t.Error("Waltz should be disabled after toggle")
		}
	}
	for _, name := range m.catalog() {
		if name == "Waltz" {
			t.Error("disabled dance still offered in the ballroom catalog")
		}
	}
}

func TestToggleDanceUnreadableSettings(t *testing.T) {
	m, _, provider := setupTestModel(t)
	provider.Put(constants.SettingsKey, "{not json")

	update(t, m, dances.ToggleDanceMsg{Name: "Waltz"})

	if raw, _ := provider.Raw(constants.SettingsKey); raw != "{not json" {
		t.Errorf("unreadable settings were overwritten with %q", raw)
	}
	if m.status == "" {
		t.Error("expected a status message")
	}
}

func TestViewRendersEachState(t *testing.T) {
	m, _, _ := setupTestModel(t)
	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	for _, state := range []constants.SessionState{constants.StateHome, constants.StateEntries, constants.StateSettings} {
		m.state = state
		if m.View() == "" {
			t.Errorf("empty view for state %v", state)
		}
	}

	m.startNew(models.SportRunning)
	if m.View() == "" {
		t.Error("empty view for form state")
	}
}
