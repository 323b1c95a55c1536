package gfx

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// WatchingCompiler keeps a program linked from source files on disk and
// recompiles it when any of them changes, so shaders can be edited while the
// example is running.
//
// File events are drained by a background goroutine into a dirty flag; the
// flag is the only state it touches. Compilation itself happens in Poll,
// which the render loop calls on the context thread.
type WatchingCompiler struct {
	fc      *FileCompiler
	files   []StageFile
	watcher *fsnotify.Watcher
	dirty   atomic.Bool
	current *Program
}

// WatchFiles compiles the files once and starts watching them. The initial
// compile must succeed; afterwards a broken edit keeps the last good program.
func WatchFiles(b Binding, files []StageFile) (*WatchingCompiler, error) {
	fc := NewFileCompiler(b)
	prog, err := fc.Compile(files)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		prog.Destroy()
		return nil, err
	}
	for _, f := range files {
		if err := watcher.Add(f.Path); err != nil {
			watcher.Close()
			prog.Destroy()
			return nil, err
		}
	}

	w := &WatchingCompiler{fc: fc, files: files, watcher: watcher, current: prog}
	go w.drain()
	return w, nil
}

func (w *WatchingCompiler) drain() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				// Editors commonly save by replacing the file, which drops
				// the watch on some platforms; re-adding is harmless when it
				// is still present.
				w.watcher.Add(ev.Name)
				w.dirty.Store(true)
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// Current returns the most recently linked program.
func (w *WatchingCompiler) Current() *Program { return w.current }

// Poll recompiles if any source file changed since the last call and reports
// whether the program was replaced. On a failed recompile the previous
// program stays current and the error is returned. Must be called on the
// context thread.
func (w *WatchingCompiler) Poll() (*Program, bool, error) {
	if !w.dirty.Swap(false) {
		return w.current, false, nil
	}
	prog, err := w.fc.Compile(w.files)
	if err != nil {
		return w.current, false, err
	}
	w.current.Destroy()
	w.current = prog
	return w.current, true, nil
}

// Close stops watching and destroys the current program.
func (w *WatchingCompiler) Close() error {
	err := w.watcher.Close()
	w.current.Destroy()
	return err
}
