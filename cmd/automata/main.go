// Command automata is a thin interactive driver over the library:
// compile a pattern, minimize it, print its canonical signature, then
// test words against it until an empty line is entered.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"automata"
)

func main() {
	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if err != nil {
			return
		}
		pat = strings.TrimRight(pat, "\r\n")
		if pat == "" {
			return
		}

		re, err := automata.Parse(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		min := re.EquivalentAutomaton().Minimize(automata.MinimizeHopcroft)
		sig, err := min.SignatureDFS()
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("minimized: %d states, signature %s\n", min.NumStates(), sig)

		for {
			fmt.Print("word> ")
			word, err := rdr.ReadString('\n')
			if err != nil {
				return
			}
			word = strings.TrimRight(word, "\r\n")
			if word == "" {
				break
			}
			fmt.Println(re.Accepts(word))
		}
	}
}
