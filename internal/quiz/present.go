package quiz

import (
	"strconv"
	"strings"
)

const (
	trueFalsePrompt      = "Is this statement true or false? (T/F): "
	multipleChoicePrompt = "Enter choice: "
)

// Presenter shows a single question and reports whether the user answered it
// correctly.
type Presenter interface {
	TrueFalse(question, answer string) (bool, error)
	MultipleChoice(question, answer string, choices []string) (bool, error)
}

// ConsolePresenter asks questions on a Console. Invalid input is re-prompted
// until a valid answer arrives or the input ends.
type ConsolePresenter struct {
	console *Console
}

func NewConsolePresenter(console *Console) *ConsolePresenter {
	return &ConsolePresenter{console: console}
}

func (p *ConsolePresenter) TrueFalse(question, answer string) (bool, error) {
	p.console.Println(question)

	var response string
	for {
		input, err := p.console.Ask(trueFalsePrompt)
		if err != nil {
			return false, err
		}
		response = strings.ToUpper(input)
		if response == "T" || response == "F" {
			break
		}
		if input != "" {
			p.console.Printf("%q is not a valid answer. Enter T or F.\n", input)
		}
	}

	correct := strings.EqualFold(response, answer)
	if correct {
		p.console.Println("Correct!")
	} else {
		p.console.Printf("Incorrect. The answer is %s\n", answer)
	}
	return correct, nil
}

func (p *ConsolePresenter) MultipleChoice(question, answer string, choices []string) (bool, error) {
	p.console.Println(question)
	p.console.printChoices(choices)

	choice, err := askChoice(p.console, multipleChoicePrompt, len(choices))
	if err != nil {
		return false, err
	}

	expected, err := strconv.Atoi(strings.TrimSpace(answer))
	correct := err == nil && choice == expected
	if correct {
		p.console.Println("Correct.")
	} else {
		p.console.Printf("Incorrect. The answer is %s\n", answer)
	}
	return correct, nil
}

// askChoice prompts until the input is a number in 1..count.
func askChoice(console *Console, prompt string, count int) (int, error) {
	for {
		input, err := console.Ask(prompt)
		if err != nil {
			return 0, err
		}
		if choice, ok := parseChoice(input, count); ok {
			return choice, nil
		}
		console.Printf("%q is not a valid choice. Enter a number between 1 and %d.\n", input, count)
	}
}

func parseChoice(input string, count int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > count {
		return 0, false
	}
	return choice, true
}
