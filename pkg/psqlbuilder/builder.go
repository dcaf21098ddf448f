package psqlbuilder

import "github.com/Masterminds/squirrel"

// Builders do squirrel já configurados com placeholders $1, $2... (Postgres)

func Select(columns ...string) squirrel.SelectBuilder {
	return squirrel.Select(columns...).PlaceholderFormat(squirrel.Dollar)
}

func Insert(table string) squirrel.InsertBuilder {
	return squirrel.Insert(table).PlaceholderFormat(squirrel.Dollar)
}

func Update(table string) squirrel.UpdateBuilder {
	return squirrel.Update(table).PlaceholderFormat(squirrel.Dollar)
}

func Delete(table string) squirrel.DeleteBuilder {
	return squirrel.Delete(table).PlaceholderFormat(squirrel.Dollar)
}
