package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vrylskyj/abook/internal/assistant"
)

// runPlain is the line-based session: read a line, dispatch, print the reply.
// Used with --plain and whenever input comes from a pipe. EOF ends the
// session the same way an explicit exit does.
func runPlain(r io.Reader, w io.Writer, asst *assistant.Assistant) error {
	fmt.Fprintln(w, assistant.Banner)

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, assistant.Prompt)

		if !sc.Scan() {
			fmt.Fprintln(w)
			fmt.Fprintln(w, assistant.Farewell)
			return sc.Err()
		}

		reply := asst.Handle(sc.Text())
		if reply.Text != "" {
			fmt.Fprintln(w, reply.Text)
		}
		if reply.Quit {
			return nil
		}
	}
}
