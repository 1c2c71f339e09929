package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

func snapshot(pharmacy string, n int) inventory.CollectionReplaced {
	return inventory.CollectionReplaced{PharmacyID: pharmacy, Items: make([]entity.InventoryItem, n), At: today}
}

func TestBroker_EntregaSoloALaFarmacia(t *testing.T) {
	b := inventory.NewBroker()
	mine, cancelMine := b.Subscribe(pharmacyID)
	defer cancelMine()
	other, cancelOther := b.Subscribe(otherPharmID)
	defer cancelOther()

	b.Publish(snapshot(pharmacyID, 1))

	select {
	case ev := <-mine:
		assert.Len(t, ev.Items, 1)
	case <-time.After(time.Second):
		t.Fatal("no llegó el evento")
	}
	select {
	case <-other:
		t.Fatal("la otra farmacia no debe recibir el evento")
	default:
	}
}

func TestBroker_ConservaSoloElUltimoSnapshot(t *testing.T) {
	b := inventory.NewBroker()
	ch, cancel := b.Subscribe(pharmacyID)
	defer cancel()

	// nadie lee: Publish no debe bloquear
	for n := 1; n <= 5; n++ {
		b.Publish(snapshot(pharmacyID, n))
	}

	ev := <-ch
	assert.Len(t, ev.Items, 5)
	select {
	case <-ch:
		t.Fatal("sólo debe quedar un snapshot pendiente")
	default:
	}
}

func TestBroker_CancelCierraYEsIdempotente(t *testing.T) {
	b := inventory.NewBroker()
	ch, cancel := b.Subscribe(pharmacyID)
	require.Equal(t, 1, b.Subscribers(pharmacyID))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, b.Subscribers(pharmacyID))

	// publicar sin suscriptores no entra en pánico
	b.Publish(snapshot(pharmacyID, 1))
}
