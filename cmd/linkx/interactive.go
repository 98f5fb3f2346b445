package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/linkx"
	"github.com/fwojciec/linkx/survey"
	"github.com/fwojciec/linkx/view"
)

// Menu entries appended after the extracted links.
const (
	optionCopyAll = "Copy all links"
	optionAnother = "Extract another URL"
	optionQuit    = "Quit"
)

// Actions offered for a single link.
const (
	actionVisit = "Open in browser"
	actionCopy  = "Copy to clipboard"
	actionBack  = "Back"
)

// Run executes the interactive command. It loops until the user quits or
// aborts a prompt.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	err := c.loop(deps)
	if errors.Is(err, survey.ErrAborted) {
		return nil
	}
	return err
}

func (c *InteractiveCmd) loop(deps *Dependencies) error {
	for {
		url, err := deps.Prompter.Input(deps.Ctx, "Page URL:", linkx.ValidateURL)
		if err != nil {
			return err
		}

		if err := deps.View.Submit(deps.Ctx, url); err != nil {
			msg := deps.View.Snapshot().Error
			if linkx.ErrorCode(err) == linkx.EINVALID {
				msg = linkx.ErrorMessage(err)
			}
			fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
			continue
		}

		quit, err := c.browse(deps)
		if err != nil || quit {
			return err
		}
	}
}

// browse shows the extracted links until the user asks for another URL
// or quits. It reports whether the user chose to quit.
func (c *InteractiveCmd) browse(deps *Dependencies) (bool, error) {
	links := deps.View.Snapshot().Links()
	if len(links) == 0 {
		fmt.Fprintln(deps.Stderr, "No links found.")
		return false, nil
	}

	options := make([]string, 0, len(links)+3)
	options = append(options, links...)
	options = append(options, optionCopyAll, optionAnother, optionQuit)

	for {
		msg := fmt.Sprintf("%d links found. Pick one:", len(links))
		i, err := deps.Prompter.Select(deps.Ctx, msg, options)
		if err != nil {
			return false, err
		}

		switch {
		case i < len(links):
			if err := c.linkAction(deps, i); err != nil {
				return false, err
			}
		case options[i] == optionCopyAll:
			fmt.Fprintln(deps.Stdout, deps.View.CopyAll().Message)
		case options[i] == optionAnother:
			return false, nil
		default:
			return true, nil
		}
	}
}

func (c *InteractiveCmd) linkAction(deps *Dependencies, index int) error {
	link := deps.View.Snapshot().Links()[index]
	actions := []string{actionVisit, actionCopy, actionBack}

	i, err := deps.Prompter.Select(deps.Ctx, link, actions)
	if err != nil {
		return err
	}

	switch actions[i] {
	case actionVisit:
		if _, err := deps.View.Click(index, view.TargetRow); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", visitErrorMessage(err))
		}
	case actionCopy:
		notice, err := deps.View.Click(index, view.TargetCopy)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", visitErrorMessage(err))
			break
		}
		fmt.Fprintln(deps.Stdout, notice.Message)
	}
	return nil
}
