package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/questland/internal/catalog"
	"github.com/abhisek/questland/internal/quest"
	"github.com/abhisek/questland/internal/screens/results"
)

var playCmd = &cobra.Command{
	Use:   "run <quest-id>",
	Short: "Play one quest in plain text mode (no TUI)",
	Long: `Play a single quest through stdin/stdout using the same rules as the TUI.

Choice questions accept the option number or the option text. The attempt is
recorded in the journal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid quest id %q: %w", args[0], err)
		}
		name, _ := cmd.Flags().GetString("name")
		explain, _ := cmd.Flags().GetBool("explain")

		c, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		st, dbPath, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		logger, closer, err := newLogger(dbPath)
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx := cmd.Context()
		game := quest.NewGame(c, quest.WithJournal(st.EventRepo()), quest.WithLogger(logger))

		var explainer results.Explainer
		if explain {
			if svc := newTutor(ctx, st.EventRepo(), logger); svc != nil {
				explainer = svc
			}
		}

		return playQuest(ctx, game, id, name, os.Stdin, os.Stdout, explainer)
	},
}

func init() {
	playCmd.Flags().String("name", "", "Player name (asked for when empty)")
	playCmd.Flags().Bool("explain", false, "Ask the LLM tutor to explain mistakes")
}

// playQuest runs one quest on a line-oriented terminal. Empty name or
// answer lines are rejected and asked again, as in the TUI.
func playQuest(ctx context.Context, game *quest.Game, questID int, name string, in io.Reader, out io.Writer, explainer results.Explainer) error {
	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	for {
		err := game.Login(ctx, name)
		if err == nil {
			break
		}
		if !errors.Is(err, quest.ErrEmptyName) {
			return err
		}
		var ok bool
		if name, ok = readLine("Как тебя зовут? "); !ok {
			return io.ErrUnexpectedEOF
		}
	}

	if err := game.StartQuest(questID); err != nil {
		return err
	}
	q, _ := game.ActiveQuest()
	fmt.Fprintf(out, "%s %s (%s, %d очков)\n%s\n\n",
		q.Icon, q.Title, q.Difficulty.DisplayName(), q.Points, q.Description)

	var res *quest.Result
	for res == nil {
		question, idx, _ := game.CurrentQuestion()
		fmt.Fprintf(out, "── Вопрос %d/%d ──\n%s\n", idx+1, len(q.Questions), question.Prompt)
		for j, opt := range question.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		line, ok := readLine("Твой ответ: ")
		if !ok {
			_ = game.Abandon()
			fmt.Fprintln(out, "\n(ввод закончился, квест прерван)")
			return io.ErrUnexpectedEOF
		}

		var err error
		res, err = game.SubmitAnswer(ctx, choiceAnswer(question, line))
		if errors.Is(err, quest.ErrEmptyAnswer) {
			fmt.Fprintln(out, "Пожалуйста, введи ответ.")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
	}

	printResult(out, res)

	if explainer != nil && len(res.Mistakes()) > 0 {
		exp, err := explainer.Explain(ctx, res)
		if err != nil {
			fmt.Fprintf(out, "\nСова сейчас не может помочь: %v\n", err)
		} else {
			printExplanation(out, res, exp.Encouragement, exp.ByQuestion)
		}
	}

	return game.Dismiss()
}

// choiceAnswer maps an option number to its text for choice questions.
func choiceAnswer(q catalog.Question, line string) string {
	if !q.IsChoice() {
		return line
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(q.Options) {
		return line
	}
	return q.Options[n-1]
}

func printResult(out io.Writer, res *quest.Result) {
	fmt.Fprintf(out, "%s Оценка: %s\n", res.Grade.Emoji, res.Grade.Label)
	fmt.Fprintf(out, "Правильных ответов: %d из %d (%.0f%%), +%d очков\n",
		res.Score.Correct, res.Score.Total, res.Score.Percentage, res.Score.EarnedPoints)

	for _, a := range res.NewAchievements {
		fmt.Fprintf(out, "Новая награда: %s %s\n", a.Icon, a.Name)
	}

	fmt.Fprintln(out)
	for i, r := range res.Review {
		mark := "✓"
		if !r.Correct {
			mark = "✗"
		}
		fmt.Fprintf(out, "%s %d. %s: %s", mark, i+1, r.Question.Prompt, r.Answer)
		if !r.Correct {
			fmt.Fprintf(out, " (правильно: %s)", r.Question.CorrectAnswer)
		}
		fmt.Fprintln(out)
	}
}

func printExplanation(out io.Writer, res *quest.Result, encouragement string, byQuestion map[int]string) {
	fmt.Fprintln(out)
	if encouragement != "" {
		fmt.Fprintln(out, "🦉", encouragement)
	}
	for _, m := range res.Mistakes() {
		if text, ok := byQuestion[m.Question.ID]; ok {
			fmt.Fprintf(out, "  %s\n    %s\n", m.Question.Prompt, text)
		}
	}
}
