// Package cgen generates C headers from IDL interfaces.
//
// Every interface targeting +c becomes one header holding an opaque struct
// typedef, the vtable layout every implementation starts with, and one
// function per method:
//
//	typedef struct thing_s thing_t;
//	typedef struct thing_vtable_s {
//		void (*destroy)(thing_t* _sides_self);
//		int (*number)(thing_t* _sides_self);
//	} thing_vtable_t;
//	struct thing_s {
//		const thing_vtable_t* vtable;
//	};
//	void thing_destroy(thing_t* _sides_self);
//	int thing_number(thing_t* _sides_self);
//
// Code is built as a tree of Nodes and streamed out through a Reader.
package cgen
