package console

import (
	"strings"
	"testing"

	"cafe-console/models"
)

func seedManagerAndLatte(store *fakeStore) {
	store.seedAccount("boss", "pw", "+1(555)000-0001", models.RoleManager)
	store.items["Latte"] = models.MenuItem{
		Name:        "Latte",
		Type:        models.ItemTypeDrinks,
		Price:       "4.50",
		Description: "Espresso with steamed milk",
		ImageURL:    "latte.png",
	}
}

func TestAddItemDuplicateNameRejectedUntilChanged(t *testing.T) {
	store := newFakeStore()
	seedManagerAndLatte(store)
	out := runScript(t, store,
		"2", "boss", "pw",
		"6",     // maintain menu
		"1",     // add item
		"Latte", // exists
		"1",     // enter a different item name
		"Mocha",
		"1",  // type: Drinks
		"25", // price cents
		"5",  // price dollars
		"Chocolate espresso",
		"mocha.png",
		"9", // back to main menu
		"9",
		"9",
	)
	if !strings.Contains(out, "An item with that name already exists!") {
		t.Fatalf("expected duplicate notice:\n%s", out)
	}
	it, ok := store.items["Mocha"]
	if !ok {
		t.Fatal("Mocha not added")
	}
	if it.Price != "5.25" {
		t.Errorf("price = %q, want 5.25 (cents then dollars)", it.Price)
	}
	if it.Type != models.ItemTypeDrinks {
		t.Errorf("type = %v, want Drinks", it.Type)
	}
}

func TestAddItemDuplicateNameCancelled(t *testing.T) {
	store := newFakeStore()
	seedManagerAndLatte(store)
	runScript(t, store,
		"2", "boss", "pw",
		"6",
		"1",
		"Latte",
		"2", // cancel
		"9",
		"9",
		"9",
	)
	if len(store.items) != 1 {
		t.Errorf("items = %d, want the seeded one only", len(store.items))
	}
}

func TestBrowseByNameMissThenHit(t *testing.T) {
	store := newFakeStore()
	store.seedAccount("carl", "pw", "+1(555)000-0002", models.RoleCustomer)
	seedManagerAndLatte(store)
	out := runScript(t, store,
		"2", "carl", "pw",
		"1", // browse menu
		"1", // search by name
		"Cappuccino",
		"1", // try a different item name
		"Latte",
		"9", // back to main menu
		"9",
		"9",
	)
	if !strings.Contains(out, "No item with that name.") {
		t.Errorf("expected miss notice:\n%s", out)
	}
	for _, want := range []string{"Name:        Latte", "Price:       4.50", "Description: Espresso with steamed milk"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in attribute listing:\n%s", want, out)
		}
	}
}

func TestBrowseByTypeAndFullListing(t *testing.T) {
	store := newFakeStore()
	store.seedAccount("carl", "pw", "+1(555)000-0002", models.RoleCustomer)
	seedManagerAndLatte(store)
	store.items["Borscht"] = models.MenuItem{Name: "Borscht", Type: models.ItemTypeSoup, Price: "6.00"}
	out := runScript(t, store,
		"2", "carl", "pw",
		"1",
		"2", // browse by type
		"2", // Soup
		"3", // full menu
		"9",
		"9",
		"9",
	)
	if !strings.Contains(out, "Borscht\t6.00") {
		t.Errorf("expected soup listing:\n%s", out)
	}
	if !strings.Contains(out, "2 item(s).") {
		t.Errorf("expected full listing count:\n%s", out)
	}
}

func TestEditItemRenameCollision(t *testing.T) {
	store := newFakeStore()
	seedManagerAndLatte(store)
	store.items["Mocha"] = models.MenuItem{Name: "Mocha", Type: models.ItemTypeDrinks, Price: "5.25"}
	out := runScript(t, store,
		"2", "boss", "pw",
		"6",
		"2", // edit item
		"Latte",
		"1",     // update name
		"Mocha", // collides
		"1",     // enter a different item name
		"Flat White",
		"9", // back (edit menu)
		"9", // back to main menu
		"9",
		"9",
	)
	if !strings.Contains(out, "An item with that name already exists!") {
		t.Errorf("expected collision notice:\n%s", out)
	}
	if _, ok := store.items["Flat White"]; !ok {
		t.Error("rename did not land after retry")
	}
	if _, ok := store.items["Latte"]; ok {
		t.Error("old item name still present after rename")
	}
}

func TestEditItemPrice(t *testing.T) {
	store := newFakeStore()
	seedManagerAndLatte(store)
	runScript(t, store,
		"2", "boss", "pw",
		"6",
		"2",
		"Latte",
		"3",   // update price
		"abc", // bad cents, reprompts the pair
		"4",
		"75", // good cents
		"4",  // dollars
		"9",
		"9",
		"9",
		"9",
	)
	if got := store.items["Latte"].Price; got != "4.75" {
		t.Errorf("price = %q, want 4.75", got)
	}
}

func TestDeleteItemConfirmAndCancel(t *testing.T) {
	store := newFakeStore()
	seedManagerAndLatte(store)
	store.items["Mocha"] = models.MenuItem{Name: "Mocha", Type: models.ItemTypeDrinks, Price: "5.25"}

	runScript(t, store,
		"2", "boss", "pw",
		"6",
		"3", // delete item
		"Mocha",
		"2", // cancel
		"3",
		"Mocha",
		"1", // delete
		"9",
		"9",
		"9",
	)
	if _, ok := store.items["Mocha"]; ok {
		t.Error("Mocha still present after confirmed delete")
	}
	if _, ok := store.items["Latte"]; !ok {
		t.Error("unrelated item removed")
	}
}
