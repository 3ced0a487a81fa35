// Command genseq prints lazily generated numeric sequences. It
// exists to demonstrate the generator package: each subcommand
// builds a generator from one of the sample bodies and pulls it to
// the console.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"

	"github.com/webriots/generator"
	"github.com/webriots/generator/sample"
)

func main() {
	app := cli.NewApp()
	app.Name = "genseq"
	app.Usage = "print lazily generated numeric sequences"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "fixed",
			Usage: "serve generator frames from a fixed-capacity allocator with `N` slots",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "fib",
			Usage: "print the Fibonacci sequence up to a ceiling",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "ceiling",
					Value: 10e44,
					Usage: "finish after the first value exceeding `C`",
				},
			},
			Action: runFib,
		},
		{
			Name:  "seq",
			Usage: "print an ascending integer sequence",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "start",
					Value: 1,
					Usage: "first value of the sequence",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 10,
					Usage: "number of values to print",
				},
			},
			Action: runSeq,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// installAllocator applies the global --fixed flag. The returned
// func restores the default allocator and must run after every
// generator created under the fixed one has been stopped.
func installAllocator(c *cli.Context) func() {
	n := c.GlobalInt("fixed")
	if n <= 0 {
		return func() {}
	}
	generator.Install(generator.NewFixedAllocator(n))
	return generator.ResetDefault
}

func runFib(c *cli.Context) error {
	defer installAllocator(c)()

	fmt.Println("Fibonacci Sequence Generator")
	fib, err := sample.Fibonacci(c.Float64("ceiling"))
	if err != nil {
		return err
	}
	defer fib.Stop()

	n := 1
	for fib.Next() {
		v, _ := fib.Value()
		fmt.Printf("%d : %g\n", n, v)
		n++
	}
	return fib.Err()
}

func runSeq(c *cli.Context) error {
	defer installAllocator(c)()

	fmt.Println("Simple Integer Sequence Generator")
	seq, err := sample.Ascending(c.Int("start"))
	if err != nil {
		return err
	}
	defer seq.Stop()

	n := 1
	for v := range seq.All() {
		fmt.Printf("%d : %d\n", n, v)
		if n++; n > c.Int("count") {
			break
		}
	}
	return seq.Err()
}
