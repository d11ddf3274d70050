package workouts

import (
	"errors"
	"fmt"

	"github.com/julianstephens/sportlog/internal/cli"
	"github.com/julianstephens/sportlog/internal/forms"
	"github.com/julianstephens/sportlog/internal/models"
)

type LogCmd struct {
	Running  RunningCmd  `cmd:"" help:"Log a run."`
	Cycling  CyclingCmd  `cmd:"" help:"Log a ride."`
	Gym      GymCmd      `cmd:"" help:"Log a gym session."`
	Ballroom BallroomCmd `cmd:"" help:"Log a ballroom practice."`
}

type RunningCmd struct {
	CommonFlags    `embed:""`
	EnduranceFlags `embed:""`
}

func (c *RunningCmd) Run(ctx *cli.Context) error {
	form := forms.NewRunningForm(ctx.Today())
	flags := Flags{Common: c.CommonFlags, Endurance: c.EnduranceFlags}
	if err := flags.ApplyRunning(form); err != nil {
		return err
	}
	if form.Pace() == "" && c.Distance != nil && c.Duration != nil {
		fmt.Println("ℹ Pace not computed: distance and duration must both be positive numbers")
	}
	return save(ctx, form.Payload())
}

type CyclingCmd struct {
	CommonFlags    `embed:""`
	EnduranceFlags `embed:""`
	CyclingFlags   `embed:""`
}

func (c *CyclingCmd) Run(ctx *cli.Context) error {
	form := forms.NewCyclingForm(ctx.Today())
	flags := Flags{Common: c.CommonFlags, Endurance: c.EnduranceFlags, Cycling: c.CyclingFlags}
	if err := flags.ApplyCycling(form); err != nil {
		return err
	}
	if form.AvgSpeed() == "" && c.Distance != nil && c.Duration != nil {
		fmt.Println("ℹ Average speed not computed: distance and duration must both be positive numbers")
	}
	return save(ctx, form.Payload())
}

type GymCmd struct {
	CommonFlags `embed:""`
	GymFlags    `embed:""`
}

func (c *GymCmd) Run(ctx *cli.Context) error {
	if len(c.Exercise) == 0 {
		return errors.New("at least one --exercise is required")
	}
	form := forms.NewGymForm(ctx.Today())
	flags := Flags{Common: c.CommonFlags, Gym: c.GymFlags}
	if err := flags.ApplyGym(form); err != nil {
		return err
	}
	return save(ctx, form.Payload())
}

type BallroomCmd struct {
	CommonFlags   `embed:""`
	BallroomFlags `embed:""`
}

func (c *BallroomCmd) Run(ctx *cli.Context) error {
	if len(c.DropDance) > 0 {
		return errors.New("--drop-dance is only valid when editing an entry")
	}
	catalog := ctx.Diary.GetSettings().EnabledDances()
	form := forms.NewBallroomForm(ctx.Today(), catalog)
	flags := Flags{Common: c.CommonFlags, Ballroom: c.BallroomFlags, Catalog: catalog}
	if err := flags.ApplyBallroom(form); err != nil {
		return err
	}
	return save(ctx, form.Payload())
}

func save(ctx *cli.Context, p models.Payload) error {
	entry := ctx.Diary.SaveEntry(p)
	fmt.Printf("✓ Logged %s entry %d: %s\n", entry.Sport, entry.Timestamp, models.Summarize(entry))
	return nil
}
