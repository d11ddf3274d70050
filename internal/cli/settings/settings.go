package settings

import (
	"fmt"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/constants"
	"github.com/julianstephens/sportlog/internal/models"
)

type SettingsCmd struct {
	List  ListCmd  `cmd:"" help:"List current settings." default:"1"`
	Dance DanceCmd `cmd:"" help:"Enable or disable dances in the ballroom catalog."`
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	settings := ctx.Diary.GetSettings()
	if len(settings.Dances) == 0 {
		fmt.Println("No dances configured (settings could not be read).")
		return nil
	}

	fmt.Println("Ballroom dances:")
	for _, d := range settings.Dances {
		mark := "[ ]"
		if d.Enabled {
			mark = "[x]"
		}
		fmt.Printf("  %s %s\n", mark, d.Name)
	}
	return nil
}

type DanceCmd struct {
	Enable  DanceEnableCmd  `cmd:"" help:"Enable a dance."`
	Disable DanceDisableCmd `cmd:"" help:"Disable a dance. Saved entries are not changed."`
	Toggle  DanceToggleCmd  `cmd:"" help:"Flip a dance between enabled and disabled."`
}

type DanceEnableCmd struct {
	Name string `arg:"" help:"Dance name (case-insensitive)."`
}

func (c *DanceEnableCmd) Run(ctx *cli.Context) error {
	return update(ctx, c.Name, func(s *models.Settings, name string) { s.SetEnabled(name, true) })
}

type DanceDisableCmd struct {
	Name string `arg:"" help:"Dance name (case-insensitive)."`
}

func (c *DanceDisableCmd) Run(ctx *cli.Context) error {
	return update(ctx, c.Name, func(s *models.Settings, name string) { s.SetEnabled(name, false) })
}

type DanceToggleCmd struct {
	Name string `arg:"" help:"Dance name (case-insensitive)."`
}

func (c *DanceToggleCmd) Run(ctx *cli.Context) error {
	return update(ctx, c.Name, func(s *models.Settings, name string) { s.Toggle(name) })
}

// update resolves name against the catalog, applies fn and saves. Settings
// that failed to load are never saved back, so a read error cannot wipe the
// catalog.
func update(ctx *cli.Context, name string, fn func(*models.Settings, string)) error {
	settings := ctx.Diary.GetSettings()
	if len(settings.Dances) == 0 {
		return fmt.Errorf("settings could not be read; run '%s doctor'", constants.AppName)
	}

	names := make([]string, len(settings.Dances))
	for i, d := range settings.Dances {
		names[i] = d.Name
	}
	matched, ok := cli.MatchDance(name, names)
	if !ok {
		return fmt.Errorf("unknown dance %q", name)
	}

	fn(&settings, matched)
	ctx.Diary.SaveSettings(settings)

	for _, d := range settings.Dances {
		if d.Name == matched {
			state := "disabled"
			if d.Enabled {
				state = "enabled"
			}
			fmt.Printf("✓ %s %s\n", matched, state)
		}
	}
	return nil
}
