package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/session"
	"github.com/abhisek/financelab/internal/ui/components"
	"github.com/abhisek/financelab/internal/ui/theme"
	"github.com/spf13/cobra"
)

const progressWidth = 48

var playCmd = &cobra.Command{
	Use:   "play <mode> <module> <skill>",
	Short: "Start a practice session",
	Long:  "Start a session in learn or practice mode. Type q to abandon without saving.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := content.ParseSessionMode(args[0])
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		svc := d.sessions()
		sess, err := svc.Start(mode, args[1], args[2])
		if errors.Is(err, session.ErrEmptyPool) {
			return fmt.Errorf("%s / %s has no %s questions", args[1], args[2], mode.DisplayName())
		}
		if err != nil {
			return err
		}

		return runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), svc, sess)
	},
}

// runSession asks every question on out, reading answers from in, and
// records the session once all are answered.
func runSession(ctx context.Context, in io.Reader, out io.Writer, svc *session.Service, sess *session.Session) error {
	sc := bufio.NewScanner(in)

	for {
		q, shown, ok := sess.Current()
		if !ok {
			break
		}
		cur, total := sess.Position()
		fmt.Fprintln(out, components.SessionProgress(cur, total, progressWidth).View())
		fmt.Fprintln(out, components.Question(q, shown))

		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read answer: %w", err)
				}
				fmt.Fprintln(out, "\nInput closed. Session abandoned, nothing saved.")
				return nil
			}
			line := strings.TrimSpace(sc.Text())
			if line == "q" || line == "quit" {
				fmt.Fprintln(out, "Session abandoned, nothing saved.")
				return nil
			}

			r, err := sess.Answer(line)
			if errors.Is(err, content.ErrInvalidAnswer) {
				fmt.Fprintln(out, theme.Hint.Render(answerHint(q, len(shown))))
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, components.Feedback(q, r))
			fmt.Fprintln(out)
			break
		}
	}

	sum, err := svc.Finish(ctx, sess)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, components.Summary(sum))
	return nil
}

func answerHint(q content.Question, options int) string {
	if q.Type == content.TypeMCQ {
		return fmt.Sprintf("Pick an option number from 1 to %d.", options)
	}
	return "Enter a number, for example 1102.50 or 4.5%."
}
