// Package mmap maps input documents into memory read-only.
//
// A Mapping exposes the file contents as bytes that share the mapped pages, so
// large documents can be split without copying them onto the heap. Pieces
// produced by the splitter are always fresh copies; only the input view
// depends on the mapping.
//
//	m, err := mmap.Open("corpus.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	data := m.Bytes() // valid until Close
//
// Unix uses mmap(2) and madvise(2); Windows uses CreateFileMapping and
// MapViewOfFile, where Advise is a no-op.
package mmap
