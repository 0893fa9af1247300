package batch

import (
	"context"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ringproofs/incognito/curve"
	"github.com/ringproofs/incognito/incognito"
	"github.com/ringproofs/incognito/schnorr"
)

func buildTask(t *testing.T, g curve.Group, h curve.Hasher, n, index int) (ConvertTask, curve.Point) {
	t.Helper()
	pks := make([]curve.Point, n)
	var sk curve.Scalar
	for i := 0; i < n; i++ {
		s, err := g.RandomScalar(rand.Reader)
		require.NoError(t, err)
		pks[i] = g.ScalarBaseMult(s)
		if i == index {
			sk = s
		}
	}
	message := []byte("batch task")
	sig, err := schnorr.Sign(g, h, rand.Reader, sk, message)
	require.NoError(t, err)
	return ConvertTask{Ring: pks, Message: message, Sig: sig, Index: index}, pks[index]
}

func TestConvertAllMatchesSequential(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	params, err := incognito.NewParams(g, h, rand.Reader, 8)
	require.NoError(t, err)

	var tasks []ConvertTask
	for i := 0; i < 5; i++ {
		task, _ := buildTask(t, g, h, 8, i%8)
		tasks = append(tasks, task)
	}

	results, err := ConvertAll(context.Background(), params, rand.Reader, tasks, 3)
	require.NoError(t, err)
	require.Len(t, results, len(tasks))

	for i, task := range tasks {
		require.NoError(t, params.Verify(task.Ring, task.Message, results[i]))
	}
}

func TestVerifyAllReportsPerTaskOutcome(t *testing.T) {
	g := curve.NewSecp256k1()
	h := curve.Sha256Hasher{}
	params, err := incognito.NewParams(g, h, rand.Reader, 4)
	require.NoError(t, err)

	goodTask, _ := buildTask(t, g, h, 4, 1)
	goodSig, err := params.Convert(rand.Reader, goodTask.Ring, goodTask.Message, goodTask.Sig, goodTask.Index)
	require.NoError(t, err)

	badTask, _ := buildTask(t, g, h, 4, 2)
	badSig, err := params.Convert(rand.Reader, badTask.Ring, badTask.Message, badTask.Sig, badTask.Index)
	require.NoError(t, err)

	tasks := []VerifyTask{
		{Ring: goodTask.Ring, Message: goodTask.Message, Signature: goodSig},
		{Ring: badTask.Ring, Message: []byte("wrong message"), Signature: badSig},
	}

	results := VerifyAll(context.Background(), params, tasks, 2)
	require.NoError(t, results[0])
	require.Error(t, results[1])
}
