package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Wayner84/minecraft-schematic-studio/define"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
	"gopkg.in/yaml.v3"
)

// Convert turns every .litematic in a directory into a build file and every build file into a .litematic,
// one file per worker goroutine.
type Convert struct {
	Workers   int  `yaml:"workers"`
	Overwrite bool `yaml:"overwrite"`
	env       *define.Env

	Done    *atomic.Int64
	Failed  *atomic.Int64
	Skipped *atomic.Int64
}

type convertJob struct {
	in, out string
}

func (o *Convert) New(config []byte) define.Task {
	err := yaml.Unmarshal(config, o)
	if err != nil {
		panic(err)
	}
	o.Done = atomic.NewInt64(0)
	o.Failed = atomic.NewInt64(0)
	o.Skipped = atomic.NewInt64(0)
	return o
}

func (o *Convert) Inject(env *define.Env) define.Task {
	o.env = env
	if o.Workers <= 0 && env.Config != nil {
		o.Workers = env.Config.Convert.Workers
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

func counterpart(path string) (string, bool) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	switch strings.ToLower(ext) {
	case extLitematic:
		return base + extJSON, true
	case extJSON:
		return base + extLitematic, true
	}
	return "", false
}

func (o *Convert) jobs(dir string) ([]convertJob, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	inputs := make(map[string]bool)
	for _, e := range entries {
		if !e.IsDir() {
			inputs[filepath.Join(dir, e.Name())] = true
		}
	}
	jobs := make([]convertJob, 0)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		in := filepath.Join(dir, e.Name())
		out, ok := counterpart(in)
		if !ok {
			continue
		}
		// a pair converts one way only, from the .litematic
		if inputs[out] && strings.EqualFold(filepath.Ext(in), extJSON) {
			o.env.Log.WithField("file", in).Debug("has a .litematic counterpart, skipped")
			o.Skipped.Inc()
			continue
		}
		if _, err := os.Stat(out); err == nil && !o.Overwrite {
			o.env.Log.WithField("file", in).Debug("target exists, skipped")
			o.Skipped.Inc()
			continue
		}
		jobs = append(jobs, convertJob{in: in, out: out})
	}
	return jobs, nil
}

func (o *Convert) convert(job convertJob) (err error) {
	defer func() {
		if info := recover(); info != nil {
			err = fmt.Errorf("panic happen (%v)", info)
		}
	}()
	codec := newCodec(o.env.Config)
	b, err := loadBuild(job.in, codec)
	if err != nil {
		return err
	}
	logImport(o.env.Log, job.in, b.stats)
	if strings.EqualFold(filepath.Ext(job.out), extJSON) {
		return saveJSON(job.out, b.state, b.name)
	}
	name := b.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(job.in), filepath.Ext(job.in))
	}
	return saveLitematic(job.out, b.state, name, codec)
}

func (o *Convert) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: convert <dir>")
	}
	jobs, err := o.jobs(args[0])
	if err != nil {
		return err
	}
	o.env.Progress("Convert: %v files, %v workers", len(jobs), o.Workers)

	queue := make(chan convertJob)
	wg := sync.WaitGroup{}
	for i := 0; i < o.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				if err := o.convert(job); err != nil {
					o.Failed.Inc()
					o.env.Log.WithFields(logrus.Fields{"file": job.in}).Error(err)
					continue
				}
				done := o.Done.Inc()
				o.env.Progress("[%v/%v] %v -> %v", done, len(jobs), filepath.Base(job.in), filepath.Base(job.out))
			}
		}()
	}
feed:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case queue <- job:
		}
	}
	close(queue)
	wg.Wait()

	o.env.Progress("Convert: %v done, %v failed, %v skipped", o.Done.Load(), o.Failed.Load(), o.Skipped.Load())
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed := o.Failed.Load(); failed > 0 {
		return fmt.Errorf("convert: %v of %v files failed", failed, len(jobs))
	}
	return nil
}

func (o *Convert) Close() {

}
