package task

import (
	"sync/atomic"
	"testing"
	"time"

	"babel/src/utils/config"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TaskTestSuite struct {
	suite.Suite
}

func (s *TaskTestSuite) TestLifecycle() {
	var started, stopped atomic.Bool

	task := NewTask(config.Default(), "test").
		WithOnBeforeStart(func() error {
			started.Store(true)
			return nil
		}).
		WithOnAfterStop(func() {
			stopped.Store(true)
		})
	task.WithSubtaskFunc(func() error {
		<-task.Ctx.Done()
		return nil
	})

	err := task.Start()
	require.NoError(s.T(), err)
	require.True(s.T(), started.Load())

	task.StopWait()
	<-task.CtxRunning.Done()
	require.True(s.T(), stopped.Load())
}

func (s *TaskTestSuite) TestSubtaskStopsWithParent() {
	var ran atomic.Bool

	child := NewTask(config.Default(), "child").
		WithPeriodicSubtaskFunc(time.Millisecond, func() error {
			ran.Store(true)
			return nil
		})

	parent := NewTask(config.Default(), "parent").
		WithSubtask(child)

	require.NoError(s.T(), parent.Start())

	require.Eventually(s.T(), ran.Load, time.Second, time.Millisecond)

	parent.StopWait()

	select {
	case <-parent.CtxRunning.Done():
	case <-time.After(time.Second):
		s.T().Fatal("parent kept running after stop")
	}
}

func (s *TaskTestSuite) TestConditionalSubtaskSkipped() {
	child := NewTask(config.Default(), "child").
		WithSubtaskFunc(func() error {
			s.T().Fatal("conditional subtask must not start")
			return nil
		})

	parent := NewTask(config.Default(), "parent").
		WithConditionalSubtask(false, child)

	require.NoError(s.T(), parent.Start())
	parent.StopWait()
}

func TestTaskTestSuite(t *testing.T) {
	suite.Run(t, new(TaskTestSuite))
}
