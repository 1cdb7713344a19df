package main

import (
	"container/list"
	"context"

	"github.com/vito/dbg/pkg/dbg"
)

// Track describes itself through Derive, including a computed
// expression alongside plain fields.
type Track struct {
	title string
	plays int
	tags  map[string]int
}

func (t Track) PrettyPrint(p *dbg.Printer) {
	p.Derive("title, plays, tags, (popular(plays))", t.title, t.plays, t.tags, popular(t.plays))
}

func popular(plays int) bool {
	return plays > 100
}

// Library has no PrettyPrint method; its exported fields render through
// the reflection fallback.
type Library struct {
	Name   string
	Tracks []Track
}

func demo(ctx context.Context) {
	p := dbg.FromContext(ctx)

	greeting := "fun"
	counts := []int{1, 2, 3}
	p.Dbg(greeting, counts)

	lib := Library{
		Name: "late nights",
		Tracks: []Track{
			{title: "banquet", plays: 212, tags: map[string]int{"post-punk": 9}},
			{title: "luno", plays: 41, tags: map[string]int{"shoegaze": 4}},
		},
	}
	p.Dbg(lib)

	var undo dbg.Stack[string]
	undo.Push("add track")
	undo.Push("rename library")

	var recent dbg.Queue[int]
	recent.Push(212)
	recent.Push(41)

	genres := dbg.Set[string]{}
	genres.Add("post-punk")
	genres.Add("shoegaze")

	p.Dbg(&undo, &recent, genres)

	history := list.New()
	history.PushBack("opened")
	history.PushBack("played")
	p.Dbg(history)

	p.Disable()
	p.Dbg("this call produces no output at all")
	p.Enable()

	first := lib.Tracks[0]
	shared := dbg.NewShared(first)
	p.Dbg(&first, shared, (len(lib.Tracks)))
}
