// Package query builds the read-only SQL statements the repositories run.
//
// Every table, column and keyword that ends up in SQL text comes from the
// enumerations below. Caller data only ever travels as bind values, and
// ToSQL always returns the statement together with its positionally
// aligned arguments.
package query

import (
	"strconv"
	"strings"
)

// Table is a table the API reads from.
type Table string

const (
	Restaurants Table = "restaurants"
	Dishes      Table = "dishes"
)

// Column is a column the API can select, filter or sort on.
type Column string

const (
	ID                Column = "id"
	Name              Column = "name"
	Cuisine           Column = "cuisine"
	Rating            Column = "rating"
	Price             Column = "price"
	IsVeg             Column = "isVeg"
	HasOutdoorSeating Column = "hasOutdoorSeating"
	IsLuxury          Column = "isLuxury"
)

// RestaurantColumns is the select list for model.Restaurant, in scan order.
var RestaurantColumns = []Column{ID, Name, Cuisine, Rating, IsVeg, HasOutdoorSeating, IsLuxury}

// DishColumns is the select list for model.Dish, in scan order.
var DishColumns = []Column{ID, Name, Price, IsVeg}

// PlaceholderFormat is the bind parameter syntax of a driver.
type PlaceholderFormat int

const (
	// Question renders every parameter as "?" (SQLite).
	Question PlaceholderFormat = iota

	// Dollar renders parameters as "$1", "$2", ... (Postgres).
	Dollar
)

// placeholder returns the marker for the n-th (1-based) parameter.
func (f PlaceholderFormat) placeholder(n int) string {
	if f == Dollar {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

func (f PlaceholderFormat) String() string {
	if f == Dollar {
		return "dollar"
	}
	return "question"
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type order struct {
	column    Column
	direction Direction
}

// SelectBuilder assembles a SELECT statement. It is a value type; every
// method returns a modified copy.
type SelectBuilder struct {
	table   Table
	columns []Column
	where   Predicate
	orderBy []order
}

// Select starts a statement reading columns from table.
func Select(table Table, columns ...Column) SelectBuilder {
	return SelectBuilder{
		table:   table,
		columns: append([]Column(nil), columns...),
	}
}

// Where replaces the statement predicate.
func (b SelectBuilder) Where(p Predicate) SelectBuilder {
	b.where = p
	return b
}

// OrderBy appends a sort key.
func (b SelectBuilder) OrderBy(column Column, direction Direction) SelectBuilder {
	b.orderBy = append(append([]order(nil), b.orderBy...), order{column: column, direction: direction})
	return b
}

// ToSQL renders the statement and its bind values.
func (b SelectBuilder) ToSQL(format PlaceholderFormat) (string, []any) {
	var sb strings.Builder

	sb.WriteString("SELECT ")
	if len(b.columns) == 0 {
		sb.WriteString("*")
	}
	for i, c := range b.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(c))
	}

	sb.WriteString(" FROM ")
	sb.WriteString(string(b.table))

	where, args := b.where.ToSQL(format)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}

	for i, o := range b.orderBy {
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(string(o.column))
		sb.WriteString(" ")
		sb.WriteString(string(o.direction))
	}

	return sb.String(), args
}
