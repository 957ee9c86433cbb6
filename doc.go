/*
Package mapreduce is a small, in-memory map/reduce execution library for a
single process.

A caller supplies a Mapper, a Reducer, optionally a Partitioner, and a list
of input file paths. exec.Run drives them through three barrier-separated
stages — map, sort/shuffle, reduce — using bounded worker pools, and
delivers each reduce group to the Reducer through the GetNext pull
protocol.

This package does not read or tokenize files itself, does not persist or
recover state across runs, and does not distribute work across machines:
it is the in-process shuffle engine only. The traditional word-count
flow is exercised end to end by the tests in exec/coordinator_test.go.

This code is licensed under the BSD-style license in the LICENSE file.
*/
package mapreduce
