package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/djherbis/atime"
	humanize "github.com/dustin/go-humanize"
	"github.com/matryer/try"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgo"
	"github.com/tdewolff/svgo/plugin"
)

// Version is the current svgo version.
var Version = "built from source"

var (
	hidden             bool
	list               bool
	optimizer          *svgo.Optimizer
	matches            []string
	matchesRegexp      []*regexp.Regexp
	filters            []string
	filtersRegexp      []*regexp.Regexp
	recursive          bool
	quiet              bool
	verbose            int
	version            bool
	watch              bool
	preserve           []string
	preserveMode       bool
	preserveOwnership  bool
	preserveTimestamps bool
)

type Matches struct {
	matches *[]string
}

func (scanner Matches) Scan(s []string) (int, error) {
	n := 0
	for _, item := range s {
		if strings.HasPrefix(item, "-") {
			break
		}
		*scanner.matches = append(*scanner.matches, item)
		n++
	}
	return n, nil
}

func (typenamer Matches) TypeName() string {
	return "[]string"
}

type Includes struct {
	filters *[]string
}

func (scanner Includes) Scan(s []string) (int, error) {
	n := 0
	for _, item := range s {
		if strings.HasPrefix(item, "-") {
			break
		}
		*scanner.filters = append(*scanner.filters, "+"+item)
		n++
	}
	return n, nil
}

func (typenamer Includes) TypeName() string {
	return "[]string"
}

type Excludes struct {
	filters *[]string
}

func (scanner Excludes) Scan(s []string) (int, error) {
	n := 0
	for _, item := range s {
		if strings.HasPrefix(item, "-") {
			break
		}
		*scanner.filters = append(*scanner.filters, "-"+item)
		n++
	}
	return n, nil
}

func (typenamer Excludes) TypeName() string {
	return "[]string"
}

// Task is an optimize task.
type Task struct {
	root string
	src  string
	dst  string
}

// NewTask returns a new Task.
func NewTask(root, input, output string) (Task, error) {
	if len(output) != 0 && (output == "." || output[len(output)-1] == os.PathSeparator) {
		rel, err := filepath.Rel(root, input)
		if err != nil {
			return Task{}, err
		}
		output = filepath.Join(output, rel)
	}
	return Task{root, input, output}, nil
}

// Loggers.
var (
	Error   *log.Logger
	Warning *log.Logger
	Info    *log.Logger
)

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var inputs []string
	var output string
	var configFile string
	var preset string
	var disabled []string
	var pretty, finalNewline bool
	var indent, precision int
	var eol string

	defaultPreserve := []string{"mode", "timestamps"}
	if supportsGetOwnership {
		defaultPreserve = []string{"mode", "ownership", "timestamps"}
	}

	f := argp.New("svgo")
	f.AddRest(&inputs, "inputs", "Input files or directories, leave blank to use stdin")
	f.AddOpt(&output, "o", "output", nil, "Output file or directory, leave blank to use stdout")
	f.AddOpt(Matches{&matches}, "", "match", nil, "Filename matching pattern, only matching filenames are processed")
	f.AddOpt(Includes{&filters}, "", "include", nil, "Path inclusion pattern, includes paths previously excluded")
	f.AddOpt(Excludes{&filters}, "", "exclude", nil, "Path exclusion pattern, excludes paths from being processed")
	f.AddOpt(&recursive, "r", "recursive", false, "Recursively optimize directories")
	f.AddOpt(&hidden, "a", "all", false, "Optimize all files, including hidden files and files in hidden directories")
	f.AddOpt(&list, "l", "list", false, "List all plugins in order")
	f.AddOpt(&quiet, "q", "quiet", false, "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", nil, "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", false, "Watch files and optimize upon changes")
	f.AddOpt(&preserve, "p", "preserve", defaultPreserve, "Preserve options (mode, ownership, timestamps, all)")
	f.AddOpt(&version, "", "version", false, "Version")

	f.AddOpt(&configFile, "c", "config", nil, "YAML configuration file with output options and the plugin pipeline")
	f.AddOpt(&preset, "", "preset", "default", "Plugin preset (default or core), ignored when the configuration lists plugins")
	f.AddOpt(&disabled, "", "disable", nil, "Plugins to disable")
	f.AddOpt(&pretty, "", "pretty", false, "Indent elements on separate lines")
	f.AddOpt(&indent, "", "indent", 4, "Number of spaces to indent with when pretty printing, negative for a tab")
	f.AddOpt(&eol, "", "eol", "lf", "Line terminator when pretty printing (lf or crlf)")
	f.AddOpt(&finalNewline, "", "final-newline", false, "End output with a line terminator")
	f.AddOpt(&precision, "", "precision", 3, "Number of decimals to preserve in numbers")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("svgo %s\n", Version)
		}
		return 0
	}

	if list {
		if !quiet {
			for _, name := range plugin.Names {
				fmt.Println(name)
			}
		}
		return 0
	}

	if len(inputs) == 1 && inputs[0] == "-" {
		inputs = inputs[:0] // stdin
	} else if output == "-" {
		output = "" // stdout
	}
	useStdin := len(inputs) == 0

	Error = log.New(io.Discard, "", 0)
	Warning = log.New(io.Discard, "", 0)
	Info = log.New(io.Discard, "", 0)
	if !quiet {
		Error = log.New(os.Stderr, "ERROR: ", 0)
		if 0 < verbose {
			Warning = log.New(os.Stderr, "WARNING: ", 0)
		}
		if 1 < verbose {
			Info = log.New(os.Stderr, "INFO: ", 0)
		}
	}

	// load configuration, flags override the configuration file
	cfg := DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = LoadConfigFile(configFile); err != nil {
			Error.Println(err)
			return 1
		}
		Info.Println("use configuration file", configFile)
	}
	if f.IsSet("preset") {
		cfg.Preset = preset
		cfg.Plugins = nil
	}
	if f.IsSet("pretty") {
		cfg.Pretty = pretty
	}
	if f.IsSet("indent") {
		cfg.Indent = indent
	}
	if f.IsSet("eol") {
		cfg.EOL = eol
	}
	if f.IsSet("final-newline") {
		cfg.FinalNewline = finalNewline
	}

	var err error
	if optimizer, err = cfg.Optimizer(); err != nil {
		Error.Println(err)
		return 1
	}
	if err := disable(optimizer, disabled); err != nil {
		Error.Println(err)
		return 1
	}
	if f.IsSet("precision") {
		setPrecision(optimizer, precision)
	}
	for _, p := range optimizer.Plugins {
		Info.Println("use plugin", p.Name())
	}

	// compile matches and regexps
	if 0 < len(matches) {
		matchesRegexp = make([]*regexp.Regexp, len(matches))
		for i, pattern := range matches {
			if matchesRegexp[i], err = compilePattern(pattern); err != nil {
				Error.Println(err)
				return 1
			}
		}
	}
	if 0 < len(filters) {
		filtersRegexp = make([]*regexp.Regexp, len(filters))
		for i, pattern := range filters {
			if filtersRegexp[i], err = compilePattern(pattern[1:]); err != nil {
				Error.Println(err)
				return 1
			}
		}
	}

	if (useStdin || output == "") && watch {
		Error.Println("--watch doesn't work with stdin and stdout, specify input and output")
		return 1
	} else if useStdin && recursive {
		Error.Println("--recursive doesn't work with stdin, specify input")
		return 1
	} else if output == "" && recursive {
		Error.Println("--recursive doesn't work with stdout, specify output")
		return 1
	}
	if f.IsSet("preserve") && (useStdin || output == "") {
		Error.Println("--preserve cannot be used together with stdin or stdout")
		return 1
	}
	for _, option := range preserve {
		switch option {
		case "all":
			preserveMode = true
			preserveOwnership = true
			preserveTimestamps = true
		case "mode":
			preserveMode = true
		case "ownership":
			preserveOwnership = true
		case "timestamps":
			preserveTimestamps = true
		default:
			Error.Println("unknown preserve option", option)
			return 1
		}
	}
	if preserveOwnership && !supportsGetOwnership {
		Warning.Println(fmt.Errorf("preserve ownership not supported on platform"))
	}

	////////////////

	for i, input := range inputs {
		if input == "-" {
			Error.Println("cannot mix files and stdin as input")
			return 1
		}
		inputs[i] = filepath.Clean(input)
		if input[len(input)-1] == os.PathSeparator {
			inputs[i] += string(os.PathSeparator)
		}
	}

	// set output file or directory, empty means stdout
	dirDst := false
	if output != "" {
		dirDst = IsDir(output)
		if !dirDst {
			if 1 < len(inputs) {
				Error.Printf("stat %v: no such file or directory\n", output)
				return 1
			} else if len(inputs) == 1 {
				if info, err := os.Lstat(inputs[0]); err == nil && info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0 {
					dirDst = true
				}
			}
		}

		output = filepath.Clean(output)
		if dirDst {
			output += string(os.PathSeparator)
		}
	} else if 1 < len(inputs) {
		Error.Println("must specify --output for multiple input files")
		return 1
	}
	if output == "" {
		Info.Println("optimize to stdout")
	} else if !dirDst {
		Info.Println("optimize to output file", output)
	} else if output == "."+string(os.PathSeparator) {
		Info.Println("optimize to current working directory")
	} else {
		Info.Println("optimize to output directory", output)
	}
	if useStdin {
		Info.Println("optimize from stdin")
	}

	var tasks []Task
	var roots []string
	if useStdin {
		task, err := NewTask("", "", output)
		if err != nil {
			Error.Println(err)
			return 1
		}
		tasks = append(tasks, task)
		roots = append(roots, "")
	} else {
		fsys := NewFS()
		tasks, roots, err = createTasks(fsys, inputs, output)
		if err != nil {
			Error.Println(err)
			return 1
		}
	}

	// make output directory
	if dirDst {
		if err := os.MkdirAll(output, 0777); err != nil {
			Error.Println(err)
			return 1
		}
	}

	////////////////

	fails := 0
	start := time.Now()
	if !watch && (len(tasks) == 1 || 0 < verbose) {
		for _, task := range tasks {
			if ok := optimize(task); !ok {
				fails++
			}
		}
	} else {
		numWorkers := runtime.NumCPU()
		if 0 < verbose {
			numWorkers = 1
		} else if numWorkers < 4 {
			numWorkers = 4
		}

		chanTasks := make(chan Task, 20)
		chanFails := make(chan int, numWorkers)
		for n := 0; n < numWorkers; n++ {
			go optimizeWorker(chanTasks, chanFails)
		}

		if !watch {
			for _, task := range tasks {
				chanTasks <- task
			}
		} else {
			watcher, err := NewWatcher(recursive)
			if err != nil {
				Error.Println(err)
				return 1
			}
			defer watcher.Close()
			changes := watcher.Run()

			for _, filename := range inputs {
				if err := watcher.AddPath(filename); err != nil {
					Error.Println(err)
					return 1
				}
			}

			for _, task := range tasks {
				watcher.IgnoreNext(task.dst)
				chanTasks <- task
			}

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			for changes != nil {
				select {
				case <-c:
					watcher.Close()
				case file, ok := <-changes:
					if !ok {
						changes = nil
						break
					}
					file = filepath.Clean(file)
					if !fileMatches(file) {
						break
					}

					// find longest common path among roots
					root := ""
					for _, path := range roots {
						pathRel, err1 := filepath.Rel(path, file)
						rootRel, err2 := filepath.Rel(root, file)
						if err2 != nil || err1 == nil && len(pathRel) < len(rootRel) {
							root = path
						}
					}

					task, err := NewTask(root, file, output)
					if err != nil {
						Error.Println(err)
						return 1
					}
					watcher.IgnoreNext(task.dst) // skip change on output
					chanTasks <- task
				}
			}
		}

		close(chanTasks)
		for n := 0; n < numWorkers; n++ {
			fails += <-chanFails
		}
	}

	if !watch {
		Info.Println("finished in", time.Since(start))
	}
	if 0 < fails {
		return 1
	}
	return 0
}

func optimizeWorker(chanTasks <-chan Task, chanFails chan<- int) {
	fails := 0
	for task := range chanTasks {
		if ok := optimize(task); !ok {
			fails++
		}
	}
	chanFails <- fails
}

// compilePattern compiles a glob pattern, or a regular expression when prefixed by ~
func compilePattern(pattern string) (*regexp.Regexp, error) {
	if len(pattern) == 0 || pattern[0] != '~' {
		if strings.HasPrefix(pattern, `\~`) {
			pattern = pattern[1:]
		}
		pattern = regexp.QuoteMeta(pattern)
		pattern = strings.ReplaceAll(pattern, `\*\*`, `.*`)
		pattern = strings.ReplaceAll(pattern, `\*`, fmt.Sprintf(`[^%c]*`, filepath.Separator))
		pattern = strings.ReplaceAll(pattern, `\?`, fmt.Sprintf(`[^%c]?`, filepath.Separator))
		pattern = "^" + pattern + "$"
	} else {
		pattern = pattern[1:]
	}
	return regexp.Compile(pattern)
}

func fileFilter(filename string) bool {
	if 0 < len(matches) {
		match := false
		base := filepath.Base(filename)
		for _, re := range matchesRegexp {
			if re.MatchString(base) {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	match := true
	for i, re := range filtersRegexp {
		if re.MatchString(filename) {
			match = filters[i][0] == '+'
		}
	}
	return match
}

// fileMatches returns true for files to optimize while walking directories, which are SVG files unless --match is
// given.
func fileMatches(filename string) bool {
	if !fileFilter(filename) {
		return false
	} else if 0 < len(matches) {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".svg")
}

func createTasks(fsys fs.FS, inputs []string, output string) ([]Task, []string, error) {
	tasks := []Task{}
	roots := []string{}
	for _, input := range inputs {
		root := filepath.Clean(filepath.Dir(input))
		input = filepath.Clean(input)

		// follow and dereference symlinks
		info, err := fs.Stat(fsys, input)
		if err != nil {
			return nil, nil, err
		}

		if info.Mode().IsRegular() {
			if fileFilter(input) {
				task, err := NewTask(root, input, output)
				if err != nil {
					return nil, nil, err
				}
				tasks = append(tasks, task)
			}
		} else if info.Mode().IsDir() {
			if !recursive {
				Warning.Println("--recursive not specified, omitting directory", input)
				continue
			}

			var walkFn func(string, fs.DirEntry, error) error
			walkFn = func(input string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				} else if d.Name() == "." || d.Name() == ".." {
					return nil
				} else if d.Name() == "" || !hidden && d.Name()[0] == '.' {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}

				if d.Type()&os.ModeSymlink != 0 {
					// follow and dereference symlinks
					info, err := fs.Stat(fsys, input)
					if err != nil {
						return err
					}
					if info.IsDir() {
						return fs.WalkDir(fsys, input, walkFn)
					}
					d = fs.FileInfoToDirEntry(info)
				}

				if d.Type().IsRegular() && fileMatches(input) {
					task, err := NewTask(root, input, output)
					if err != nil {
						return err
					}
					tasks = append(tasks, task)
				}
				return nil
			}
			if err := fs.WalkDir(fsys, input, walkFn); err != nil {
				return nil, nil, err
			}
			roots = append(roots, root)
		} else {
			return nil, nil, fmt.Errorf("not a file or directory %s", input)
		}
	}
	return tasks, roots, nil
}

func optimize(t Task) bool {
	srcName := t.src
	if srcName == "" {
		srcName = "stdin"
	}
	dstName := t.dst
	if dstName == "" {
		dstName = "stdout"
	} else if sameFile, _ := SameFile(t.src, t.dst); sameFile {
		// rename original when overwriting
		t.src += ".bak"
		err := try.Do(func(attempt int) (bool, error) {
			ferr := os.Rename(t.dst, t.src)
			return attempt < 5, ferr
		})
		if err != nil {
			Error.Println(err)
			return false
		}
	}

	fr, err := openInputFile(t.src)
	if err != nil {
		Error.Println(err)
		return false
	}

	fw, err := openOutputFile(t.dst)
	if err != nil {
		Error.Println(err)
		fr.Close()
		return false
	}

	b, err := io.ReadAll(fr)
	if err != nil {
		fr.Close()
		fw.Close()
		Error.Println("cannot optimize "+srcName+":", err)
		return false
	}
	w := bytes.NewBuffer(make([]byte, 0, len(b)))

	success := true
	startTime := time.Now()
	if err = optimizer.Minify(w, bytes.NewReader(b)); err != nil {
		w = bytes.NewBuffer(b) // copy original
		Error.Println("cannot optimize "+srcName+":", err)
		success = false
	}

	rLen, wLen := len(b), w.Len()
	_, err = io.Copy(fw, w)
	fr.Close()
	fw.Close()

	if !quiet {
		dur := time.Since(startTime)
		speed := "Inf MB"
		if 0 < dur {
			speed = humanize.Bytes(uint64(float64(rLen) / dur.Seconds()))
		}
		ratio := 1.0
		if 0 < rLen {
			ratio = float64(wLen) / float64(rLen)
		}

		stats := fmt.Sprintf("(%9v, %6v, %6v, %5.1f%%, %6v/s)", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(wLen)), ratio*100, speed)
		if srcName != dstName {
			fmt.Fprintln(os.Stderr, stats, "-", srcName, "to", dstName)
		} else {
			fmt.Fprintln(os.Stderr, stats, "-", srcName)
		}
	}

	// remove original that was renamed, when overwriting files
	if t.src == t.dst+".bak" {
		if err == nil {
			if err = os.Remove(t.src); err != nil {
				Error.Println(err)
				return false
			}
		} else {
			if err = os.Remove(t.dst); err != nil {
				Error.Println(err)
				return false
			} else if err = os.Rename(t.src, t.dst); err != nil {
				Error.Println(err)
				return false
			}
		}
		t.src = t.dst
	} else if err != nil {
		Error.Println(err)
		return false
	}
	preserveAttributes(t.src, t.root, t.dst)
	return success
}

func preserveAttributes(src, root, dst string) {
	if src == "" || dst == "" {
		return
	}

	// make sure we only set attributes on directories and files inside the root destination
	var err error
	src, err = filepath.Rel(root, src)
	if err != nil {
		// should never occur
		Error.Printf("src is not part of root path: src=%s root=%s", src, root)
		return
	}

Next:
	srcInfo, err := os.Stat(filepath.Join(root, src))
	if err != nil {
		Warning.Println(err)
		return
	}

	if preserveMode {
		err = os.Chmod(dst, srcInfo.Mode().Perm())
		if err != nil {
			Warning.Println(err)
		}
	}
	if preserveOwnership {
		if uid, gid, ok := getOwnership(srcInfo); ok {
			err = os.Chown(dst, uid, gid)
			if err != nil {
				Warning.Println(err)
			}
		}
	}
	if preserveTimestamps {
		err = os.Chtimes(dst, atime.Get(srcInfo), srcInfo.ModTime())
		if err != nil {
			Warning.Println(err)
		}
	}

	src = filepath.Dir(src)
	dst = filepath.Dir(dst)
	if src != "." {
		// go up to but excluding the root path
		goto Next
	}
}
