//go:build cgo

package cabi

/*
#include <stdlib.h>
#include "cabi.h"

extern void sidesGoThingDestroy(uintptr_t);
extern int sidesGoThingNumber(uintptr_t);

void thing_destroy(thing_t* self) {
	self->vtable->destroy(self);
}

int thing_number(thing_t* self) {
	return self->vtable->number(self);
}

static void go_thing_destroy(thing_t* self) {
	uintptr_t h = ((sides_go_thing_t*)self)->handle;
	free(self);
	sidesGoThingDestroy(h);
}

static int go_thing_number(thing_t* self) {
	return sidesGoThingNumber(((sides_go_thing_t*)self)->handle);
}

const thing_vtable_t sides_go_thing_vtable = {
	go_thing_destroy,
	go_thing_number,
};

thing_t* sides_go_thing_new(uintptr_t handle) {
	sides_go_thing_t* g = malloc(sizeof(sides_go_thing_t));
	if (g == NULL) {
		return NULL;
	}
	g->base.vtable = &sides_go_thing_vtable;
	g->handle = handle;
	return &g->base;
}

int sides_is_go_thing(thing_t* t) {
	return t->vtable == &sides_go_thing_vtable;
}

uintptr_t sides_go_thing_release(thing_t* t) {
	uintptr_t h = ((sides_go_thing_t*)t)->handle;
	free(t);
	return h;
}

typedef struct sides_c_thing_s {
	thing_t base;
	int number;
	int* destroyed;
} sides_c_thing_t;

static void c_thing_destroy(thing_t* self) {
	sides_c_thing_t* c = (sides_c_thing_t*)self;
	(*c->destroyed)++;
	free(c);
}

static int c_thing_number(thing_t* self) {
	return ((sides_c_thing_t*)self)->number;
}

static const thing_vtable_t c_thing_vtable = {
	c_thing_destroy,
	c_thing_number,
};

thing_t* sides_c_thing_new(int number, int* destroyed) {
	sides_c_thing_t* c = malloc(sizeof(sides_c_thing_t));
	if (c == NULL) {
		return NULL;
	}
	c->base.vtable = &c_thing_vtable;
	c->number = number;
	c->destroyed = destroyed;
	return &c->base;
}
*/
import "C"
