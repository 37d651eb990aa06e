package render

import (
	"fmt"
	"io"
	"os"
)

func bad(name string) {
	fmt.Println(name)             // want "fmt.Println writes to stdout from an internal package"
	fmt.Printf("%s\n", name)      // want "fmt.Printf writes to stdout from an internal package"
	fmt.Fprintln(os.Stdout, name) // want "os.Stdout used in an internal package"
}

func good(w io.Writer, name string) error {
	_, err := fmt.Fprintln(w, name)
	return err
}

func goodStderr(name string) {
	fmt.Fprintln(os.Stderr, name)
}

func goodSprint(name string) string {
	return fmt.Sprintf("[%s]", name)
}
