package console

import (
	"context"
	"errors"

	"cafe-console/models"
	"cafe-console/services"
)

// browseMenu lets any authenticated user search or list the cafe menu.
func (s *Session) browseMenu(ctx context.Context) error {
	for {
		s.printf("CAFE MENU\n")
		s.printf("---------\n")
		s.printf("1. Search by item name\n")
		s.printf("2. Browse by type\n")
		s.printf("3. Full menu\n")
		s.printf("9. Back to Main Menu\n")

		n, err := s.readChoice()
		if err != nil {
			return err
		}
		switch n {
		case 1:
			if err := s.searchItemByName(ctx); err != nil {
				return err
			}
		case 2:
			if err := s.browseByType(ctx); err != nil {
				return err
			}
		case 3:
			items, err := s.store.ListMenu(ctx)
			if err != nil {
				s.fail("list menu", err)
				continue
			}
			s.printItems(items)
		case 9:
			return nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

func (s *Session) searchItemByName(ctx context.Context) error {
	for {
		name, err := s.readLine("Enter item name: ")
		if err != nil {
			return err
		}
		it, gerr := s.store.GetMenuItem(ctx, name)
		switch {
		case gerr == nil:
			s.printf("Name:        %s\n", it.Name)
			s.printf("Type:        %s\n", it.Type)
			s.printf("Price:       %s\n", it.Price)
			s.printf("Description: %s\n", it.Description)
			s.printf("Image:       %s\n", it.ImageURL)
			return nil
		case errors.Is(gerr, services.ErrNotFound):
			s.printf("No item with that name.\n")
			retry, err := s.retryOrCancel("Try a different item name", "Back to menu")
			if err != nil {
				return err
			}
			if !retry {
				return nil
			}
		default:
			s.fail("search item", gerr)
			return nil
		}
	}
}

func (s *Session) browseByType(ctx context.Context) error {
	t, ok, err := s.chooseItemType()
	if err != nil || !ok {
		return err
	}
	items, err := s.store.ListMenuByType(ctx, t)
	if err != nil {
		s.fail("browse by type", err)
		return nil
	}
	s.printItems(items)
	return nil
}

func (s *Session) printItems(items []models.MenuItem) {
	if len(items) == 0 {
		s.printf("No items found.\n")
		return
	}
	for _, it := range items {
		s.printf("%s\t%s\t%s\t%s\n", it.Name, it.Price, it.Description, it.ImageURL)
	}
	s.printf("%d item(s).\n", len(items))
}

// chooseItemType reads one of the three item types; ok is false on cancel.
func (s *Session) chooseItemType() (models.ItemType, bool, error) {
	s.printf("1. Drinks\n")
	s.printf("2. Soup\n")
	s.printf("3. Sweets\n")
	s.printf("9. Cancel\n")
	for {
		n, err := s.readChoice()
		if err != nil {
			return "", false, err
		}
		switch n {
		case 1:
			return models.ItemTypeDrinks, true, nil
		case 2:
			return models.ItemTypeSoup, true, nil
		case 3:
			return models.ItemTypeSweets, true, nil
		case 9:
			return "", false, nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

// maintainMenu is the manager-only add/edit/delete surface.
func (s *Session) maintainMenu(ctx context.Context) error {
	for {
		s.printf("MENU MAINTENANCE\n")
		s.printf("----------------\n")
		s.printf("1. Add item\n")
		s.printf("2. Edit item\n")
		s.printf("3. Delete item\n")
		s.printf("9. Back to Main Menu\n")

		n, err := s.readChoice()
		if err != nil {
			return err
		}
		switch n {
		case 1:
			if err := s.addMenuItem(ctx); err != nil {
				return err
			}
		case 2:
			if err := s.editMenuItem(ctx); err != nil {
				return err
			}
		case 3:
			if err := s.deleteMenuItem(ctx); err != nil {
				return err
			}
		case 9:
			return nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

// chooseNewItemName loops until the supplied name is unused; ok is false
// when the manager cancels.
func (s *Session) chooseNewItemName(ctx context.Context) (string, bool, error) {
	for {
		name, err := s.readLine("Enter item name: ")
		if err != nil {
			return "", false, err
		}
		if name == "" {
			s.printf("Item name cannot be empty.\n")
			continue
		}
		taken, err := s.store.ItemExists(ctx, name)
		if err != nil {
			s.fail("check item name", err)
			return "", false, nil
		}
		if !taken {
			return name, true, nil
		}
		s.printf("An item with that name already exists!\n")
		retry, err := s.retryOrCancel("Enter a different item name", "Cancel")
		if err != nil {
			return "", false, err
		}
		if !retry {
			return "", false, nil
		}
	}
}

// chooseExistingItem resolves an item by exact name with the usual
// retry-or-cancel loop on a miss.
func (s *Session) chooseExistingItem(ctx context.Context) (string, bool, error) {
	for {
		name, err := s.readLine("Enter item name: ")
		if err != nil {
			return "", false, err
		}
		it, gerr := s.store.GetMenuItem(ctx, name)
		switch {
		case gerr == nil:
			return it.Name, true, nil
		case errors.Is(gerr, services.ErrNotFound):
			s.printf("No item with that name.\n")
			retry, err := s.retryOrCancel("Try a different item name", "Cancel")
			if err != nil {
				return "", false, err
			}
			if !retry {
				return "", false, nil
			}
		default:
			s.fail("look up item", gerr)
			return "", false, nil
		}
	}
}

// readPrice collects the price as two prompts, cents then dollars, and
// assembles the decimal string. The prompt order is a fixed input contract.
func (s *Session) readPrice() (string, error) {
	for {
		cents, err := s.readLine("Enter price cents: ")
		if err != nil {
			return "", err
		}
		dollars, err := s.readLine("Enter price dollars: ")
		if err != nil {
			return "", err
		}
		price, perr := services.PriceFromParts(cents, dollars)
		if perr != nil {
			s.printf("%s\n", perr)
			continue
		}
		return price, nil
	}
}

func (s *Session) addMenuItem(ctx context.Context) error {
	name, ok, err := s.chooseNewItemName(ctx)
	if err != nil || !ok {
		return err
	}
	itemType, ok, err := s.chooseItemType()
	if err != nil || !ok {
		return err
	}
	price, err := s.readPrice()
	if err != nil {
		return err
	}
	description, err := s.readLine("Enter description: ")
	if err != nil {
		return err
	}
	imageURL, err := s.readLine("Enter image URL: ")
	if err != nil {
		return err
	}

	for {
		aerr := s.store.AddMenuItem(ctx, models.MenuItem{
			Name:        name,
			Type:        itemType,
			Price:       price,
			Description: description,
			ImageURL:    imageURL,
		})
		switch {
		case aerr == nil:
			s.printf("Item successfully added!\n")
			return nil
		case errors.Is(aerr, services.ErrItemTaken):
			// Lost the race after the pre-check; pick another name.
			s.printf("An item with that name already exists!\n")
			name, ok, err = s.chooseNewItemName(ctx)
			if err != nil || !ok {
				return err
			}
		default:
			s.fail("add item", aerr)
			return nil
		}
	}
}

// itemState names the states of the item edit machine.
type itemState int

const (
	itemSelectField itemState = iota
	itemEditName
	itemEditType
	itemEditPrice
	itemEditDescription
	itemEditImage
	itemDone
)

func (s *Session) editMenuItem(ctx context.Context) error {
	target, ok, err := s.chooseExistingItem(ctx)
	if err != nil || !ok {
		return err
	}

	state := itemSelectField
	for state != itemDone {
		var err error
		switch state {
		case itemSelectField:
			state, err = s.itemFieldMenu(target)
		case itemEditName:
			target, state, err = s.itemEditName(ctx, target)
		case itemEditType:
			state, err = s.itemEditType(ctx, target)
		case itemEditPrice:
			state, err = s.itemEditPrice(ctx, target)
		case itemEditDescription:
			state, err = s.itemEditDescription(ctx, target)
		case itemEditImage:
			state, err = s.itemEditImage(ctx, target)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) itemFieldMenu(target string) (itemState, error) {
	s.printf("EDIT ITEM '%s'\n", target)
	s.printf("1. Update name\n")
	s.printf("2. Update type\n")
	s.printf("3. Update price\n")
	s.printf("4. Update description\n")
	s.printf("5. Update image URL\n")
	s.printf("9. Back\n")
	for {
		n, err := s.readChoice()
		if err != nil {
			return itemDone, err
		}
		switch n {
		case 1:
			return itemEditName, nil
		case 2:
			return itemEditType, nil
		case 3:
			return itemEditPrice, nil
		case 4:
			return itemEditDescription, nil
		case 5:
			return itemEditImage, nil
		case 9:
			return itemDone, nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}

func (s *Session) itemEditName(ctx context.Context, target string) (string, itemState, error) {
	for {
		newName, err := s.readLine("Enter updated item name: ")
		if err != nil {
			return target, itemDone, err
		}
		if newName == "" {
			s.printf("Item name cannot be empty.\n")
			continue
		}

		taken, err := s.store.ItemExists(ctx, newName)
		if err != nil {
			s.fail("rename item", err)
			return target, itemSelectField, nil
		}
		if !taken {
			err = s.store.RenameMenuItem(ctx, target, newName)
			if err == nil {
				s.printf("Item name successfully updated!\n")
				return newName, itemSelectField, nil
			}
			if !errors.Is(err, services.ErrItemTaken) {
				s.fail("rename item", err)
				return target, itemSelectField, nil
			}
		}

		s.printf("An item with that name already exists!\n")
		retry, err := s.retryOrCancel("Enter a different item name", "Go back to edit menu")
		if err != nil {
			return target, itemDone, err
		}
		if !retry {
			return target, itemSelectField, nil
		}
	}
}

func (s *Session) itemEditType(ctx context.Context, target string) (itemState, error) {
	t, ok, err := s.chooseItemType()
	if err != nil {
		return itemDone, err
	}
	if !ok {
		return itemSelectField, nil
	}
	if err := s.store.UpdateItemType(ctx, target, t); err != nil {
		s.fail("update item type", err)
		return itemSelectField, nil
	}
	s.printf("Item type successfully updated!\n")
	return itemSelectField, nil
}

func (s *Session) itemEditPrice(ctx context.Context, target string) (itemState, error) {
	price, err := s.readPrice()
	if err != nil {
		return itemDone, err
	}
	if err := s.store.UpdateItemPrice(ctx, target, price); err != nil {
		s.fail("update item price", err)
		return itemSelectField, nil
	}
	s.printf("Item price successfully updated!\n")
	return itemSelectField, nil
}

func (s *Session) itemEditDescription(ctx context.Context, target string) (itemState, error) {
	description, err := s.readLine("Enter updated description: ")
	if err != nil {
		return itemDone, err
	}
	if err := s.store.UpdateItemDescription(ctx, target, description); err != nil {
		s.fail("update item description", err)
		return itemSelectField, nil
	}
	s.printf("Item description successfully updated!\n")
	return itemSelectField, nil
}

func (s *Session) itemEditImage(ctx context.Context, target string) (itemState, error) {
	imageURL, err := s.readLine("Enter updated image URL: ")
	if err != nil {
		return itemDone, err
	}
	if err := s.store.UpdateItemImageURL(ctx, target, imageURL); err != nil {
		s.fail("update item image", err)
		return itemSelectField, nil
	}
	s.printf("Item image successfully updated!\n")
	return itemSelectField, nil
}

func (s *Session) deleteMenuItem(ctx context.Context) error {
	target, ok, err := s.chooseExistingItem(ctx)
	if err != nil || !ok {
		return err
	}
	s.printf("1. Delete '%s'\n", target)
	s.printf("2. Cancel\n")
	for {
		n, err := s.readChoice()
		if err != nil {
			return err
		}
		switch n {
		case 1:
			if derr := s.store.DeleteMenuItem(ctx, target); derr != nil {
				s.fail("delete item", derr)
				return nil
			}
			s.printf("Item successfully deleted!\n")
			return nil
		case 2:
			return nil
		default:
			s.printf("Unrecognized choice!\n")
		}
	}
}
