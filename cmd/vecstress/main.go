// vecstress drives the veckit container through growth and drain
// workloads and reports allocator behavior.
package main

func main() {
	execute()
}
