package storage_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/misterclayt0n/overload/internal/apparatus"
	"github.com/misterclayt0n/overload/internal/errors"
	"github.com/misterclayt0n/overload/internal/models"
	"github.com/misterclayt0n/overload/internal/storage"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

func open(t *testing.T) *storage.Storage {
	t.Helper()
	st, err := storage.Open("file:"+filepath.Join(t.TempDir(), "overload.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func catalog(name string) models.Catalog {
	return models.Catalog{
		Name:        name,
		Description: gofakeit.Sentence(6),
		Exercises: []models.ExerciseDef{{
			Name:      "Squat",
			Apparatus: &apparatus.Def{Kind: apparatus.KindBarbell, Bar: 45, Plates: []float64{45, 25, 10, 5, 2.5}},
			Plan:      models.PlanDef{Kind: "linear", Sets: 3, Reps: 5},
			Weight:    135,
			Rest:      180,
		}},
		Workouts: []models.Workout{{Name: "A", Exercises: []string{"Squat"}}},
	}
}

func TestOpen_RequiresConnString(t *testing.T) {
	_, err := storage.Open("  ", "")
	assert.Error(t, err)
}

func TestPrograms(t *testing.T) {
	ctx := context.Background()
	st := open(t)

	name := gofakeit.Word() + " program"
	require.NoError(t, st.SaveProgram(ctx, catalog(name)))
	require.NoError(t, st.SaveProgram(ctx, catalog("another")))

	got, err := st.GetProgram(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, catalog(name).Exercises, got.Exercises)
	assert.Equal(t, catalog(name).Workouts, got.Workouts)

	list, err := st.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Saving again replaces the catalog instead of duplicating it.
	updated := catalog(name)
	updated.Workouts = append(updated.Workouts, models.Workout{Name: "B", Exercises: []string{"Squat"}})
	require.NoError(t, st.SaveProgram(ctx, updated))
	got, err = st.GetProgram(ctx, name)
	require.NoError(t, err)
	assert.Len(t, got.Workouts, 2)
	list, err = st.ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = st.GetProgram(ctx, "missing")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestExercises(t *testing.T) {
	ctx := context.Background()
	st := open(t)
	require.NoError(t, st.SaveProgram(ctx, catalog("p")))

	require.NoError(t, st.SaveExercise(ctx, "p", "Squat", []byte(`{"v":1}`)))
	require.NoError(t, st.SaveExercise(ctx, "p", "Squat", []byte(`{"v":2}`)))
	require.NoError(t, st.SaveExercise(ctx, "p", "Bench", []byte(`{"v":3}`)))

	docs, err := st.LoadExercises(ctx, "p")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.JSONEq(t, `{"v":2}`, string(docs["Squat"]))

	require.NoError(t, st.DeleteExercises(ctx, "p", "Bench"))
	docs, err = st.LoadExercises(ctx, "p")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	err = st.SaveExercise(ctx, "nope", "Squat", []byte(`{}`))
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))

	require.NoError(t, st.DeleteProgram(ctx, "p"))
	_, err = st.LoadExercises(ctx, "p")
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
	assert.True(t, errors.IsCode(st.DeleteProgram(ctx, "p"), errors.CodeNotFound))
}

func TestExportImportTOML(t *testing.T) {
	ctx := context.Background()
	src := open(t)
	require.NoError(t, src.SaveProgram(ctx, catalog("p")))
	require.NoError(t, src.SaveExercise(ctx, "p", "Squat", []byte(`{"weight":135}`)))

	var buf bytes.Buffer
	require.NoError(t, src.ExportTOML(ctx, &buf))
	assert.Contains(t, buf.String(), "[[programs]]")

	dst := open(t)
	require.NoError(t, dst.SaveProgram(ctx, catalog("stale")))
	require.NoError(t, dst.ImportTOML(ctx, bytes.NewReader(buf.Bytes())))

	list, err := dst.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p", list[0].Name)

	docs, err := dst.LoadExercises(ctx, "p")
	require.NoError(t, err)
	assert.JSONEq(t, `{"weight":135}`, string(docs["Squat"]))

	err = dst.ImportTOML(ctx, bytes.NewReader([]byte("[[users]]\nname = \"x\"\n")))
	assert.Error(t, err)
}
