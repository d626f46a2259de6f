package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

// Check panics with msg when err is set. Reserved for conditions the caller
// cannot recover from.
func Check(err error, msg string) {
	if err == nil {
		return
	}

	fmt.Print(chalk.Red)
	log.Print(msg, chalk.Reset)
	log.Panicln(err)
}

// Assert panics with msg when the invariant does not hold.
func Assert(invariant bool, msg string) {
	if invariant {
		return
	}

	fmt.Print(chalk.Red)
	log.Print(msg, chalk.Reset)
	log.Panic(msg)
}
