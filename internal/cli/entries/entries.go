package entries

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/cli/workouts"
	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/diary"
	"github.com/julianstephens/sportlog/internal/models"
)

type EntriesCmd struct {
	List   ListCmd   `cmd:"" help:"List entries, latest first." default:"1"`
	Show   ShowCmd   `cmd:"" help:"Show one entry as JSON."`
	Edit   EditCmd   `cmd:"" help:"Edit an entry in place."`
	Clear  ClearCmd  `cmd:"" help:"Delete every entry."`
	Export ExportCmd `cmd:"" help:"Export entries and settings as JSON."`
}

type ListCmd struct {
	Sport string `help:"Only show this sport (running, cycling, gym, ballroom)."`
	Limit int    `help:"Show at most this many entries (0 = all)." default:"0"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	var sport models.Sport
	if c.Sport != "" {
		s, err := models.ParseSport(c.Sport)
		if err != nil {
			return err
		}
		sport = s
	}
	if c.Limit < 0 {
		return errors.New("--limit must not be negative")
	}

	entries := diary.Latest(ctx.Diary.GetEntries(), sport, c.Limit)
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%d  %s  %s %-8s  %s\n",
			e.Timestamp,
			e.Time().Format(constants.DisplayTimeFormat),
			e.Sport.Info().Icon,
			e.Sport,
			models.Summarize(e))
	}
	return nil
}

type ShowCmd struct {
	Timestamp int64 `arg:"" help:"Entry timestamp as shown by 'entries list'."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	entry, ok := ctx.Diary.FindEntry(c.Timestamp)
	if !ok {
		return fmt.Errorf("no entry with timestamp %d", c.Timestamp)
	}
	out, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type EditCmd struct {
	Timestamp int64 `arg:"" help:"Entry timestamp as shown by 'entries list'."`

	workouts.CommonFlags    `embed:""`
	workouts.EnduranceFlags `embed:""`
	workouts.CyclingFlags   `embed:""`
	workouts.GymFlags       `embed:""`
	workouts.BallroomFlags  `embed:""`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	entry, ok := ctx.Diary.FindEntry(c.Timestamp)
	if !ok {
		return fmt.Errorf("no entry with timestamp %d", c.Timestamp)
	}

	if err := c.checkFlags(entry.Sport); err != nil {
		return err
	}

	updated, err := workouts.Edit(entry.Data, workouts.Flags{
		Common:    c.CommonFlags,
		Endurance: c.EnduranceFlags,
		Cycling:   c.CyclingFlags,
		Gym:       c.GymFlags,
		Ballroom:  c.BallroomFlags,
		Catalog:   ctx.Diary.GetSettings().EnabledDances(),
	})
	if err != nil {
		return err
	}

	ctx.Diary.UpdateEntry(entry.Timestamp, updated)
	fmt.Printf("✓ Updated %s entry %d: %s\n", entry.Sport, entry.Timestamp,
		models.Summarize(models.Entry{Timestamp: entry.Timestamp, Sport: updated.Sport(), Data: updated}))
	return nil
}

// checkFlags rejects flags that do not apply to the entry's sport.
func (c *EditCmd) checkFlags(sport models.Sport) error {
	var used []string
	if c.Distance != nil || c.Duration != nil || c.Rating != nil {
		used = append(used, "endurance")
	}
	if c.Indoor != nil {
		used = append(used, "cycling")
	}
	if len(c.Exercise) > 0 {
		used = append(used, "gym")
	}
	if len(c.Dance) > 0 || len(c.DropDance) > 0 {
		used = append(used, "ballroom")
	}

	allowed := map[models.Sport][]string{
		models.SportRunning:  {"endurance"},
		models.SportCycling:  {"endurance", "cycling"},
		models.SportGym:      {"gym"},
		models.SportBallroom: {"ballroom"},
	}[sport]

	for _, group := range used {
		if !slices.Contains(allowed, group) {
			return fmt.Errorf("%s flags do not apply to a %s entry", group, sport)
		}
	}
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	return c.run(ctx, os.Stdin)
}

func (c *ClearCmd) run(ctx *cli.Context, in io.Reader) error {
	count := len(ctx.Diary.GetEntries())
	if !c.Yes {
		fmt.Printf("⚠️  This will permanently delete all %d entries.\n", count)
		fmt.Print("Continue? [y/N]: ")

		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	ctx.Diary.ClearEntries()
	fmt.Printf("✓ Cleared %d entries\n", count)
	return nil
}

type ExportCmd struct {
	Out string `help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	data, err := ctx.Diary.ExportDocuments()
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	data = append(data, '\n')

	if c.Out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(c.Out, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("✓ Exported to %s\n", c.Out)
	return nil
}
