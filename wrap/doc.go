// Package wrap ties a manually reference-counted native object to a
// garbage-collected host object.
//
// Attach pairs a native value with a freshly constructed host object by
// storing the pairing record and a type tag in two internal slots; Unwrap
// recovers the native value after validating the tag, UnwrapUnsafe skips
// validation on paths where the dispatch signature already guarantees the
// dynamic type.
//
// Each pairing moves through four states:
//
//	Unattached      native exists, no host object
//	Attached-Weak   refcount 0, collectible, finalizer armed
//	Attached-Strong refcount > 0, pinned against collection
//	Finalized       GC ran the weak callback, native freed
//
// AddRef and Release move between weak and strong; the GC's weak callback
// performs the only transition into Finalized and must observe a zero
// refcount. Running the finalizer while references are held is a
// use-after-free and trips a panic rather than corrupting memory.
//
// All operations, including AddRef and Release, must run on the VM thread.
package wrap
