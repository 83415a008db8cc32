package frond

import "github.com/jward/frond/internal/store"

// Public type aliases for internal store types used in the Engine API.
// These are Go type aliases (=) — identical to the internal types at compile
// time. External consumers use these names; no conversion is needed.

type Store = store.Store
type File = store.File
type Symbol = store.Symbol
type FunctionParam = store.FunctionParam
type Annotation = store.Annotation
