// Package core provides the thread-safe graph model behind the BFS path picker:
// labeled, positioned nodes, undirected edges, ordered adjacency, abstract
// visual-state annotations, and pointer hit-testing.
//
// The Graph G = (V,E) is deliberately small and literal:
//
//   - Nodes keep insertion order; each has a fixed circular hit region.
//   - Edges are undirected and stored once as the pair passed to AddEdge.
//   - Parallel edges and self-loops are kept as given (a multigraph); nothing
//     is deduplicated.
//   - adjacency[v] lists neighbors in the order edges were added, and AddEdge
//     appends to both endpoints in one critical section, so adjacency is always
//     the symmetric closure of the edge multiset.
//   - Annotations are tags, not colors: NodeDefault | NodeSelectedStart | NodeOnPath
//     for nodes and EdgeDefault | EdgeOnPath for edges. Renderers map tags to styles.
//
// Core Methods:
//
//	// Construction (startup only)
//	AddNode(id string, pos Point, opts ...NodeOption) error  // ErrEmptyNodeID, ErrDuplicateNode, ErrBadHitRadius
//	AddEdge(a, b string) (edgeID string, err error)          // ErrNodeNotFound
//
//	// Query
//	NeighborsOf(id string) ([]string, error)  // insertion order, copy
//	Adjacency() Adjacency                     // index-based snapshot for algorithms
//	Nodes() []Node / Edges() []Edge           // insertion order, copies
//	NodeAt(p Point) (id string, ok bool)      // hit test, lowest insertion index wins
//
//	// Annotation
//	ResetAnnotations()                        // idempotent
//	AnnotateNode(id string, a NodeAnnotation) error
//	AnnotatePath(path []string) error
//
//	// Rendering
//	Snapshot() Frame
//
// Concurrency:
//
//	Every method takes the graph's RWMutex. Structure is fixed after startup, so
//	in practice only annotation writes contend with renderer snapshots.
package core
