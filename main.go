package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/Wayner84/minecraft-schematic-studio/config"
	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/Wayner84/minecraft-schematic-studio/tasks"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func usage() {
	names := make([]string, 0, len(tasks.Pool()))
	for name := range tasks.Pool() {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr, "usage: %v [-c studio.yaml] <task> [args...]\ntasks: %v\n", os.Args[0], names)
}

func main() {
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	color.Blue("Collecting Infomation...")
	cfg, err := config.CollectInfo()
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	if _, err := os.Stat(cfg.WriteBackPath()); os.IsNotExist(err) {
		fmt.Printf("Main: No config provided, will create %v automatically\n", cfg.WriteBackPath())
		if err := config.WriteBack(cfg); err != nil {
			color.Red("%v", err)
			os.Exit(1)
		}
	}
	color.Green("Information Collected!")

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: !color.NoColor, FullTimestamp: true})
	log.SetLevel(cfg.Level())

	args := cfg.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	newTask, ok := tasks.Pool()[args[0]]
	if !ok {
		color.Red("No Such Task: (%v)", args[0])
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.Warnf("Got signal: %v, stopping", s)
		cancel()
	}()

	env := &define.Env{
		Log: log,
		Progress: func(format string, a ...interface{}) {
			color.Cyan(format, a...)
		},
		Config: cfg,
	}
	color.Blue("Running Task: %v", args[0])
	task := newTask().New(cfg.TaskConfig(args[0])).Inject(env)
	err = task.Run(ctx, args[1:])
	task.Close()
	cancel()
	if err != nil {
		log.WithField("task", args[0]).Error(err)
		os.Exit(1)
	}
	color.Green("Done!")
}
