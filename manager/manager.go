// Package manager implements the process-wide command registry: named
// command trees, shortcuts, enable/disable state, and a single entry point
// that drives an Analyser against the right tree.
package manager

import (
	"sync"

	"github.com/arclet-go/alconna/alerr"
	"github.com/arclet-go/alconna/analyser"
	"github.com/arclet-go/alconna/command"
	"github.com/arclet-go/alconna/result"
	"github.com/arclet-go/alconna/token"
)

// Shortcut is a registered expansion: invoking its name replays Expansion
// as if it had been typed. Reserve keeps the shortcut across a command's
// Disable/Enable cycle (it otherwise disappears when its owning command is
// disabled, mirroring the source's "arg reserve" flag).
type Shortcut struct {
	Expansion []token.Unit
	Reserve   bool
}

type entry struct {
	tree     *command.Root
	enabled  bool
	shortcut map[string]Shortcut
}

// Manager owns a set of named command trees plus their shortcuts and
// enable/disable state. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	commands map[string]*entry
	types    map[string]func() any // registered custom pattern constructors, by type mark
	analyser *analyser.Analyser
}

// New builds an empty Manager.
func New() *Manager {
	m := &Manager{
		commands: map[string]*entry{},
		types:    map[string]func() any{},
	}
	a := analyser.New()
	a.Shortcuts = m.resolveShortcut
	m.analyser = a
	return m
}

var global = New()

// Global returns the process-wide default Manager.
func Global() *Manager { return global }

// Register adds tree under its own name, enabled by default. Registering a
// name that already exists replaces its tree but preserves shortcuts
// marked Reserve.
func (m *Manager) Register(tree *command.Root) error {
	if tree == nil {
		return alerr.NewInvalidParam("tree must not be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prior, existed := m.commands[tree.Name]
	e := &entry{tree: tree, enabled: true, shortcut: map[string]Shortcut{}}
	if existed {
		for name, sc := range prior.shortcut {
			if sc.Reserve {
				e.shortcut[name] = sc
			}
		}
	}
	m.commands[tree.Name] = e
	return nil
}

// Enable/Disable toggle whether a registered command participates in
// analysis. A disabled command's non-reserved shortcuts are dropped.
func (m *Manager) Enable(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.commands[name]; ok {
		e.enabled = true
	}
}

func (m *Manager) Disable(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.commands[name]
	if !ok {
		return
	}
	e.enabled = false
	for sname, sc := range e.shortcut {
		if !sc.Reserve {
			delete(e.shortcut, sname)
		}
	}
}

// AddShortcut registers name as an alias for expansion under command
// cmdName.
func (m *Manager) AddShortcut(cmdName, shortcutName string, sc Shortcut) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.commands[cmdName]
	if !ok {
		return alerr.NewInvalidParam("no such command %q", cmdName)
	}
	e.shortcut[shortcutName] = sc
	return nil
}

// RegisterType installs a custom pattern constructor under mark. The table
// is only stored: Manager has no lookup method for it, and neither
// snapshot.Load nor alconna.Format reads it.
func (m *Manager) RegisterType(mark string, ctor func() any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.types[mark] = ctor
}

// Analyse looks up name and, if registered and enabled, runs the analyser
// against it. A missing or disabled command yields a failure Record rather
// than an error, matching the analyser's own "every failure is a Record"
// contract.
func (m *Manager) Analyse(name string, input analyser.Input) *result.Record {
	m.mu.RLock()
	e, ok := m.commands[name]
	enabled := ok && e.enabled
	m.mu.RUnlock()
	if !enabled {
		rec := result.New()
		rec.ErrorInfo = "command not found or disabled: " + name
		return rec
	}
	return m.analyser.Analyse(e.tree, input)
}

// Tree returns the registered tree for name, if any — for callers that
// need the tree itself rather than an analysis (e.g. to pass it to
// snapshot.Dump).
func (m *Manager) Tree(name string) (*command.Root, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.commands[name]
	if !ok {
		return nil, false
	}
	return e.tree, true
}

func (m *Manager) resolveShortcut(tree *command.Root, units []token.Unit) ([]token.Unit, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.commands[tree.Name]
	if !ok || len(units) == 0 || units[0].Kind != token.KindText {
		return nil, false
	}
	sc, ok := e.shortcut[units[0].Text]
	if !ok {
		return nil, false
	}
	expansion := make([]token.Unit, 0, len(sc.Expansion)+len(units)-1)
	expansion = append(expansion, sc.Expansion...)
	expansion = append(expansion, units[1:]...)
	return expansion, true
}
