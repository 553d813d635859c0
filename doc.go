// Package mazefinder solves text mazes with a catalog of classic search
// strategies and shows how each one explores the grid.
//
// What is mazefinder?
//
//	A small state-space search toolkit built from four layers:
//		• frontier: generic pending-work containers (priority queue, FIFO queue,
//		  LIFO stack, uniform random list)
//		• maze:     grid, problem model, heuristics and the text file format
//		• search:   BFS, three DFS variants, Dijkstra, A* (weighted), greedy
//		  best-first and random search, all behind one Strategy signature
//		• render:   plain and lipgloss rendering, a paced terminal animator
//
// Under the hood:
//
//	frontier/           PriorityQueue, Queue, Stack, RandomList
//	maze/               Position, Move, Cell, Grid, Problem, Heuristic, Parse, Discover
//	search/             strategies, Result/Outcome, Hook/Visualizer, Catalog, Lookup, Solve
//	render/             Theme, Animator, FormatPath
//	internal/config/    viper-backed settings
//	internal/server/    gin HTTP API over the catalog
//	cmd/mazefinder/     list, solve, serve, config
//
// Maze files are rectangular blocks where X is a wall and anything else is
// open, followed by the endpoints:
//
//	XXXXX
//	X   X
//	X X X
//	X   X
//	XXXXX
//	start 1 1
//	end 3 3
//
// Quick start:
//
//	p, _ := maze.Load("mazes/small.txt")
//	res, _ := search.AStarManhattan(p, nil)
//	fmt.Println(res.Outcome, res.Explored, render.FormatPath(res.Path))
package mazefinder
