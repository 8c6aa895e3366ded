package usecases

import (
	"context"
	"testing"

	"ifcfg-agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRenderer is a testify mock for the Renderer port.
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(cfg *entities.InterfaceConfig) ([]byte, error) {
	args := m.Called(cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockConfigWriter is a testify mock for the ConfigWriter port.
type MockConfigWriter struct {
	mock.Mock
}

func (m *MockConfigWriter) WriteIfChanged(path string, content []byte) (bool, error) {
	args := m.Called(path, content)
	return args.Bool(0), args.Error(1)
}

// MockServiceController is a testify mock for the ServiceController port.
type MockServiceController struct {
	mock.Mock
}

func (m *MockServiceController) DisableNetworkManager(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockServiceController) RestartNetwork(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func newApplyUseCase(
	locator *MockInterfaceLocator,
	renderer *MockRenderer,
	writer *MockConfigWriter,
	service *MockServiceController,
) *ApplyConfigurationUseCase {
	return NewApplyConfigurationUseCase(newBuildUseCase(locator), renderer, writer, service, newTestLogger())
}

func TestApplyConfigurationUseCase_Execute_RestartOnlyWhenChanged(t *testing.T) {
	tests := []struct {
		name        string
		changed     bool
		wantRestart bool
	}{
		{name: "changed content triggers restart", changed: true, wantRestart: true},
		{name: "unchanged content skips restart", changed: false, wantRestart: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locator := new(MockInterfaceLocator)
			renderer := new(MockRenderer)
			writer := new(MockConfigWriter)
			service := new(MockServiceController)

			service.On("DisableNetworkManager", mock.Anything).Return(nil)
			renderer.On("Render", mock.Anything).Return([]byte("DEVICE=eth0\n"), nil)
			writer.On("WriteIfChanged", "/etc/sysconfig/network-scripts/ifcfg-eth0", []byte("DEVICE=eth0\n")).
				Return(tt.changed, nil)
			if tt.wantRestart {
				service.On("RestartNetwork", mock.Anything).Return(nil).Once()
			}

			uc := newApplyUseCase(locator, renderer, writer, service)
			output, err := uc.Execute(context.Background(), []entities.Declaration{
				{
					ID:         1,
					Identifier: entities.NameIdentifier("eth0"),
					Params:     entities.InterfaceParams{State: "up"},
				},
			})
			require.NoError(t, err)

			assert.Equal(t, 1, output.Processed)
			assert.Equal(t, 0, output.Failed)
			if tt.wantRestart {
				assert.Equal(t, 1, output.Changed)
			} else {
				assert.Equal(t, 0, output.Changed)
			}
			service.AssertExpectations(t)
			if !tt.wantRestart {
				service.AssertNotCalled(t, "RestartNetwork", mock.Anything)
			}
		})
	}
}

func TestApplyConfigurationUseCase_Execute_FailuresAreIsolated(t *testing.T) {
	locator := new(MockInterfaceLocator)
	renderer := new(MockRenderer)
	writer := new(MockConfigWriter)
	service := new(MockServiceController)

	service.On("DisableNetworkManager", mock.Anything).Return(nil)
	renderer.On("Render", mock.Anything).Return([]byte("DEVICE=eth1\n"), nil)
	writer.On("WriteIfChanged", mock.Anything, mock.Anything).Return(true, nil)
	service.On("RestartNetwork", mock.Anything).Return(nil)

	uc := newApplyUseCase(locator, renderer, writer, service)

	// First declaration has a bad state, second is valid. One bad
	// declaration must not block the other.
	output, err := uc.Execute(context.Background(), []entities.Declaration{
		{
			ID:         1,
			Identifier: entities.NameIdentifier("eth0"),
			Params:     entities.InterfaceParams{State: "broken"},
		},
		{
			ID:         2,
			Identifier: entities.NameIdentifier("eth1"),
			Params:     entities.InterfaceParams{State: "up"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.Processed)
	assert.Equal(t, 1, output.Failed)
	assert.Equal(t, 1, output.Changed)
	require.Len(t, output.Results, 2)
	assert.Error(t, output.Results[0].Err)
	assert.NoError(t, output.Results[1].Err)

	// The failed declaration never reached the writer.
	writer.AssertNumberOfCalls(t, "WriteIfChanged", 1)
}

func TestApplyConfigurationUseCase_Execute_EmptyBatch(t *testing.T) {
	locator := new(MockInterfaceLocator)
	renderer := new(MockRenderer)
	writer := new(MockConfigWriter)
	service := new(MockServiceController)

	uc := newApplyUseCase(locator, renderer, writer, service)
	output, err := uc.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, output.Processed)

	// An empty batch must not touch the service manager.
	service.AssertNotCalled(t, "DisableNetworkManager", mock.Anything)
}
