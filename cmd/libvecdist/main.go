// libvecdist exposes the distance kernels to C hosts.
//
// Build:
//
//	go build -buildmode=c-shared -o libvecdist.so ./cmd/libvecdist
//
// The generated libvecdist.h declares:
//
//	int vecdist_euclidean(float *a, size_t na, float *b, size_t nb, float *out);
//	char *vecdist_active_isa(void);
//
// vecdist_euclidean returns 0 on success and -1 when the lengths differ or
// a required pointer is NULL; nothing is read or written in that case.
package main

// c-shared builds require a main function; it is never called.
func main() {}
