// Package task provides the task assignment subsystem: operational tasks
// fanned out to warehouse operators, each assignment moving through a
// simple two-state workflow (pendiente, then en proceso once evidence of
// completion is submitted). It shares the actor/role model of the order
// workflow but is otherwise independent of orders.
package task
