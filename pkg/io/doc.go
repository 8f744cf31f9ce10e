// Package io exports carved mazes as JSON for external tools.
//
// A maze is fully described by its size and the passages that are open.
// The document stores exactly that, plus the parameters it was carved with
// and, optionally, every cell's marks:
//
//	{
//	  "width": 3,
//	  "height": 2,
//	  "seed": 100,
//	  "horizontal_bias": 1,
//	  "vertical_bias": 1,
//	  "passages": [
//	    {"from": {"col": 0, "row": 0}, "to": {"col": 1, "row": 0}},
//	    {"from": {"col": 0, "row": 0}, "to": {"col": 0, "row": 1}}
//	  ],
//	  "cells": [
//	    {"pos": {"col": 0, "row": 0}, "open": [false, true, false, true], "visited": true, "highlighted": true, "distance": 0}
//	  ]
//	}
//
// Passages are listed once each, from the upper or left cell, scanning row
// by row. "open" in a cell is indexed up, down, left, right.
//
// The format is write-only: mazewalk regenerates a maze from its seed and
// never loads one back.
//
// Use [FromSession] or [NewDocument] to capture a maze, then [ExportJSON] or
// [WriteJSON] to write it.
package io
