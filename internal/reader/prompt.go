package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoFileName = errors.New("no file name given")

const banner = "=============== HTML Validator ==============="

// Choice is a document offered to the user before the prompt.
type Choice struct {
	Name string
	Note string
}

// PromptFileName lists the offered choices, asks for the name of the document
// to validate and reads one line from in.
func PromptFileName(in io.Reader, out io.Writer, choices ...Choice) (string, error) {
	var b strings.Builder
	b.WriteString(banner + "\n")
	if len(choices) > 0 {
		b.WriteString("Provided test files:\n")
		for _, c := range choices {
			if c.Note == "" {
				fmt.Fprintf(&b, "%s\n", c.Name)
				continue
			}
			fmt.Fprintf(&b, "%s (%s)\n", c.Name, c.Note)
		}
	}
	b.WriteString("\nEnter the name of an html file to validate: ")

	if _, err := io.WriteString(out, b.String()); err != nil {
		return "", err
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read file name: %w", err)
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return "", ErrNoFileName
	}
	return name, nil
}
