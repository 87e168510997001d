// Package task runs native work off the VM thread and completes it back on
// the VM thread.
//
// A Task splits into OnWork, which runs on a worker with no host context
// available and must only touch plain native data, and OnDone, which runs
// back on the VM thread inside a freshly entered context. Host values
// captured as task input are converted to persistent references before the
// worker is scheduled and re-entered as live handles only inside OnDone.
//
// Completions run in work completion order, not submission order. If the
// host process is torn down while work is outstanding, OnDone does not run;
// no cleanup guarantee is made for that case.
package task
