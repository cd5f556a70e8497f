/*
Command pdict runs scripts against versions of a persistent dictionary.

    pdict run script.pd
    echo "v = empty add a 1
    keys v" | pdict run --check --stats

See package internal/session for the script syntax.
*/
package main

func main() {
	Execute()
}
