package types

import (
	"github.com/moznion/go-optional"
	deadlock "github.com/sasha-s/go-deadlock"
)

// Store is the append-only interning table component C1 describes:
// every Type a check run produces, keyed by the TypeId handed back from
// Register. Grounded on the teacher's Checker, which hands out fresh
// TypeVarID/SymbolID values from monotonically increasing counters
// (internal/checker/checker.go); this Store generalizes that counter to
// cover every Type variant, not just type variables.
//
// The mutex is a deadlock.RWMutex rather than sync.RWMutex: a single
// check run is single-threaded by design, and go-deadlock reports a lock
// that is held too long or taken in an inconsistent order instead of
// hanging silently.
type Store struct {
	mu     deadlock.RWMutex
	types  []Type
	nextFn FunctionId
	funcs  map[FunctionId]*FunctionDescriptor
}

// NewStore builds a Store with the reserved sentinel types already
// registered at their fixed TypeId values (see the TypeId const block).
func NewStore() *Store {
	s := &Store{
		funcs: make(map[FunctionId]*FunctionDescriptor),
	}
	s.types = make([]Type, firstUserType)
	s.types[ErrorType] = &NamedRootedType{Name: "error"}
	s.types[UndefinedType] = &ConstantType{Lit: &UndefinedLit{}}
	s.types[NullType] = &ConstantType{Lit: &NullLit{}}
	s.types[ArrayType] = &NamedRootedType{Name: "Array"}
	s.types[TType] = &RootPolyType{Nature: &GenericNature{Name: "T", EagerFixed: ErrorType}}
	s.types[NewTargetArg] = &RootPolyType{Nature: &ParameterNature{Name: "new.target"}}
	return s
}

// Register interns t and returns the TypeId future lookups should use.
// Each call allocates a new slot even for a value structurally equal to
// one already stored; callers that want sharing must cache the TypeId
// themselves; see Equals to compare contents once fetched.
func (s *Store) Register(t Type) TypeId {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := TypeId(len(s.types))
	s.types = append(s.types, t)
	return id
}

// Get resolves id to the Type it was Registered with. It panics on an
// out-of-range id, which indicates a bug in the caller (a TypeId from a
// different Store, or a zero value used before Register), not a
// reportable error condition.
func (s *Store) Get(id TypeId) Type {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.types[int(id)]
}

// FreshTypeVar allocates a new ParameterNature root poly type for use as
// an inference variable during argument synthesis. The constraint
// argument is accepted but not recorded: the returned type carries no
// constraint.
func (s *Store) FreshTypeVar(name string, constraint optional.Option[TypeId]) TypeId {
	_ = constraint
	return s.Register(&RootPolyType{Nature: &ParameterNature{Name: name}})
}

// RegisterFunction stores a FunctionDescriptor under a fresh FunctionId.
// build runs without the store's lock held, so it may register types
// (e.g. fresh type variables) on the same Store.
func (s *Store) RegisterFunction(build func(FunctionId) *FunctionDescriptor) FunctionId {
	s.mu.Lock()
	id := s.nextFn
	s.nextFn++
	s.mu.Unlock()

	fd := build(id)
	fd.Id = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs[id] = fd
	return id
}

// Function resolves a FunctionId to the descriptor RegisterFunction
// stored for it.
func (s *Store) Function(id FunctionId) *FunctionDescriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.funcs[id]
}

// Len reports how many types have been interned, including the reserved
// sentinels; used by tests asserting Register doesn't leak extra slots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.types)
}
