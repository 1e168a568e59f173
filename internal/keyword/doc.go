// Package keyword reconciles an item's keyword tags against a desired
// keyword list.
//
// Diff computes the ordered add/remove delta:
//
//	delta := keyword.Diff(item.CurrentTags(), []string{"travel", "2020"})
//	// delta.NamesToAdd:    desired names the item lacks, in list order
//	// delta.NamesToRemove: current tag names not desired, in tag order
//	// delta.TagsToRemove:  the matching tag handles, index-aligned
//
// Apply performs the delta through the item's mutation hooks.
package keyword
