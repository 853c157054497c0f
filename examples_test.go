package procenv_test

import (
	"fmt"

	"github.com/ruffel/procenv"
	"github.com/ruffel/procenv/detect"
	"github.com/ruffel/procenv/procenvtest"
	"github.com/ruffel/procenv/providers/local"
	"github.com/ruffel/procenv/providers/mock"
	testifymock "github.com/stretchr/testify/mock"
)

func ExampleProcess_local() {
	env, err := local.New(procenv.WithArgs("--name", "world"))
	if err != nil {
		panic(err)
	}

	defer func() { _ = env.Close() }()

	args := env.Args()

	_ = env.Stdout(fmt.Sprintf("hello %s\n", args[1]))
	// Output: hello world
}

func ExampleProcess_detect() {
	proc, err := detect.New(procenv.WithArgs())
	if err != nil {
		panic(err)
	}

	fmt.Println(proc.Family(), len(proc.Args()))
	// Output: local 0
}

// greet is ordinary calling code: it gets its capability injected.
func greet(proc procenv.Process) {
	args := proc.Args()
	if len(args) == 0 {
		_ = proc.Stderr("usage: greet NAME\n")
		proc.Exit(2)

		return
	}

	_ = proc.Stdout("hi " + args[0] + "\n")
}

func ExampleProcess_recorder() {
	rec := procenvtest.NewRecorder()

	greet(rec)

	fmt.Printf("%q %v\n", rec.StderrString(), rec.ExitCodes())
	// Output: "usage: greet NAME\n" [2]
}

func ExampleProcess_mock() {
	proc := mock.New()
	proc.On("Args").Return([]string{"ada"})
	proc.On("Stdout", "hi ada\n").Return(nil)

	greet(proc)

	fmt.Println(proc.AssertExpectations(new(testingT)))
	// Output: true
}

func ExampleProcess_signal() {
	proc := mock.New()
	proc.On("Signal", procenv.SIGTERM, testifymock.Anything).Run(mock.InvokeHandler()).Return(nil)

	_ = proc.Signal(procenv.SIGTERM, func() { fmt.Println("shutting down") })
	// Output: shutting down
}

func ExampleParseVocabulary() {
	vocab, err := procenv.ParseVocabulary("term,info")
	if err != nil {
		panic(err)
	}

	fmt.Println(vocab, vocab.Contains(procenv.SIGHUP))
	// Output: restricted false
}

// testingT satisfies testify's mock.TestingT for examples.
type testingT struct{}

func (testingT) Logf(string, ...any)   {}
func (testingT) Errorf(string, ...any) {}
func (testingT) FailNow()              {}
