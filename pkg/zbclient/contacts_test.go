package zbclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerbeam/zbserver/internal/functions"
)

func TestListContactsQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		contactType  ContactType
		opts         ListOptions
		wantEndpoint string
	}{
		{
			name:         "no filters",
			contactType:  ContactTypeVendor,
			opts:         ListOptions{},
			wantEndpoint: "/contacts?contact_type=vendor",
		},
		{
			name:         "all filters",
			contactType:  ContactTypeCustomer,
			opts:         ListOptions{Limit: 10, Offset: 20, Status: "active"},
			wantEndpoint: "/contacts?contact_type=customer&limit=10&offset=20&status=active",
		},
		{
			name:         "absent filters omitted",
			contactType:  ContactTypeCustomer,
			opts:         ListOptions{Limit: 10},
			wantEndpoint: "/contacts?contact_type=customer&limit=10",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			invoker := &fakeInvoker{respond: func(call recordedCall) (*functions.Envelope, error) {
				return successEnvelope(`{"contacts":[]}`), nil
			}}
			client := newTestClient(invoker, &fakeTokens{})

			_, err := client.ListContacts(context.Background(), tt.contactType, tt.opts)
			require.NoError(t, err)
			require.Len(t, invoker.calls, 1)
			require.Equal(t, tt.wantEndpoint, invoker.calls[0].Endpoint)
			require.Equal(t, http.MethodGet, invoker.calls[0].Method)
		})
	}
}

func TestCreateContactStampsType(t *testing.T) {
	t.Parallel()

	t.Run("vendor without discriminator", func(t *testing.T) {
		t.Parallel()

		invoker := &fakeInvoker{}
		client := newTestClient(invoker, &fakeTokens{})

		_, err := client.CreateVendor(context.Background(), map[string]interface{}{
			"contact_name": "Acme Supplies",
		})
		require.NoError(t, err)

		body := invoker.calls[0].Body.(map[string]interface{})
		require.Equal(t, "vendor", body["contact_type"])
		require.Equal(t, "Acme Supplies", body["contact_name"])
	})

	t.Run("customer with conflicting discriminator", func(t *testing.T) {
		t.Parallel()

		invoker := &fakeInvoker{}
		client := newTestClient(invoker, &fakeTokens{})

		_, err := client.CreateCustomer(context.Background(), map[string]interface{}{
			"contact_name": "Globex",
			"contact_type": "vendor",
		})
		require.NoError(t, err)

		body := invoker.calls[0].Body.(map[string]interface{})
		require.Equal(t, "customer", body["contact_type"], "discriminator is always stamped")
	})
}

func TestContactUpdateValidate(t *testing.T) {
	t.Parallel()

	require.Error(t, ContactUpdate{}.Validate())

	name := "New Name"
	require.NoError(t, ContactUpdate{ContactName: &name}.Validate())
}

func TestListOptionsQueryOmission(t *testing.T) {
	t.Parallel()

	require.Empty(t, ListOptions{}.query())
	require.Equal(t, "status=paid", ListOptions{Status: "paid"}.query().Encode())
}
