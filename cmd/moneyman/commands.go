package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkhatri/moneyman/internal/aggregate"
	"github.com/mkhatri/moneyman/internal/models"
)

const dateFormat = "2006-01-02"

type addCmd struct {
	Title  string `arg:"" help:"Free-text description."`
	Amount string `short:"a" required:"" help:"Amount (magnitude; the type carries the sign)."`
	Date   string `short:"d" help:"Date as YYYY-MM-DD (default: today)."`
	Type   string `short:"t" default:"expense" enum:"income,expense,lend,borrow" help:"Transaction type."`
	Person string `short:"p" help:"Person name (required for lend/borrow)."`
}

// Run validates the draft the way the entry form does and hands it to the
// tracker. The tracker itself accepts any well-formed draft.
func (c *addCmd) Run(app *appContext) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("please enter a title")
	}
	if strings.TrimSpace(c.Amount) == "" {
		return fmt.Errorf("please enter an amount")
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if c.Date != "" {
		parsed, err := time.Parse(dateFormat, c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q, want %s", c.Date, dateFormat)
		}
		date = parsed
	}

	typ, ok := models.ParseType(c.Type)
	if !ok {
		return fmt.Errorf("unknown type %q", c.Type)
	}
	if (typ == models.TypeLend || typ == models.TypeBorrow) && strings.TrimSpace(c.Person) == "" {
		return fmt.Errorf("please enter a person for lend/borrow")
	}

	tx := app.tracker.AddTransaction(app.ctx, models.Transaction{
		Title:  strings.TrimSpace(c.Title),
		Amount: models.ParseAmount(c.Amount),
		Date:   date,
		Type:   typ,
		Person: strings.TrimSpace(c.Person),
	})

	fmt.Printf("added %s\n", tx.ID)
	return nil
}

type rmCmd struct {
	ID string `arg:"" help:"Transaction id."`
}

func (c *rmCmd) Run(app *appContext) error {
	app.tracker.RemoveTransaction(app.ctx, c.ID)
	return nil
}

type txnsCmd struct {
	Person string `help:"Only transactions referencing this person id."`
}

func (c *txnsCmd) Run(app *appContext) error {
	txs := app.tracker.Transactions()
	if c.Person != "" {
		txs = app.tracker.PersonTransactions(c.Person)
	}
	renderTransactions(app, txs)
	return nil
}

type peopleCmd struct {
	Ls     peopleLsCmd     `cmd:"" default:"1" help:"List people."`
	Rename peopleRenameCmd `cmd:"" help:"Rename a person."`
	Merge  peopleMergeCmd  `cmd:"" help:"Merge one person into another."`
	Rm     peopleRmCmd     `cmd:"" help:"Delete a person and all their transactions."`
}

type peopleLsCmd struct{}

func (c *peopleLsCmd) Run(app *appContext) error {
	renderPersons(app.tracker.Persons())
	return nil
}

type peopleRenameCmd struct {
	ID   string `arg:"" help:"Person id."`
	Name string `arg:"" help:"New display name."`
}

func (c *peopleRenameCmd) Run(app *appContext) error {
	app.tracker.RenamePerson(app.ctx, c.ID, c.Name)
	return nil
}

type peopleMergeCmd struct {
	Source string `arg:"" help:"Person id to merge away."`
	Target string `arg:"" help:"Person id that absorbs the source's transactions."`
}

func (c *peopleMergeCmd) Run(app *appContext) error {
	app.tracker.MergePeople(app.ctx, c.Source, c.Target)
	return nil
}

type peopleRmCmd struct {
	ID string `arg:"" help:"Person id."`
}

func (c *peopleRmCmd) Run(app *appContext) error {
	app.tracker.DeletePerson(app.ctx, c.ID)
	return nil
}

type totalsCmd struct{}

func (c *totalsCmd) Run(app *appContext) error {
	renderTotals(app, app.tracker.Totals())
	return nil
}

type reportCmd struct {
	Granularity string `short:"g" default:"monthly" enum:"daily,weekly,monthly,yearly" help:"Bucket size."`
	Limit       int    `short:"n" default:"12" help:"Number of buckets to show."`
}

func (c *reportCmd) Run(app *appContext) error {
	g, err := aggregate.ParseGranularity(c.Granularity)
	if err != nil {
		return err
	}
	renderBuckets(app, app.tracker.Report(g, c.Limit))
	return nil
}

type balancesCmd struct{}

func (c *balancesCmd) Run(app *appContext) error {
	renderBalances(app, app.tracker.Balances())
	return nil
}
