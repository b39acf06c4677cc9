package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("competition_id", "c1"), IsNull("deleted_at")).
		OrderBy("name ASC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE competition_id = $1 AND deleted_at IS NULL ORDER BY name ASC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"c1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrAndILike(t *testing.T) {
	query, args, err := Select("*").
		From("matches").
		Where(Or(Eq("home_team_id", "t1"), Eq("away_team_id", "t1")), ILike("venue", "50%_off")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM matches WHERE (home_team_id = $1 OR away_team_id = $2) AND venue ILIKE $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"t1", "t1", `%50\%\_off%`}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID      string `db:"id"`
		Name    string `db:"name"`
		ignored string
		Skip    string `db:"-"`
	}

	query, args, err := InsertModel("teams", row{ID: "t1", Name: "Arsenal"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"t1", "Arsenal"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateModel(t *testing.T) {
	type row struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}

	query, args, err := UpdateModel("teams", &row{ID: "t1", Name: "Arsenal"}, "id")
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{"Arsenal", "t1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetExpr(t *testing.T) {
	query, args, err := Update("news").
		SetExpr("views", "views + ?", 1).
		Where(Eq("id", "n1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE news SET views = views + $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if !reflect.DeepEqual(args, []any{1, "n1"}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := DeleteFrom("teams").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}

	query, args, err := DeleteFrom("teams").Where(Eq("id", "t1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM teams WHERE id = $1" || !reflect.DeepEqual(args, []any{"t1"}) {
		t.Fatalf("unexpected delete: %s %+v", query, args)
	}
}
